package entry

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// fallbackSlug is used when a title has no alphanumeric characters.
const fallbackSlug = "entry"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lower-cases s, collapses every run of non-alphanumeric characters into
// a single hyphen and strips leading and trailing hyphens.
func Slug(s string) string {
	s = nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

func slugOrFallback(title string) string {
	if s := Slug(title); s != "" {
		return s
	}
	return fallbackSlug
}

// NewID makes `slug-millis` for entries created interactively.
func NewID(title string, now time.Time) string {
	return fmt.Sprintf("%s-%d", slugOrFallback(title), now.UnixMilli())
}

// NewImportID makes `slug-millis-suffix`. The random suffix keeps ids distinct
// when a bulk import synthesizes many of them within the same millisecond.
func NewImportID(title string, now time.Time) string {
	return fmt.Sprintf("%s-%s", NewID(title, now), randomSuffix())
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}
