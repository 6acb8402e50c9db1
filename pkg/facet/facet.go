// Package facet derives the filter menus for place, category and person.
package facet

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/timeline/pkg/entry"
)

// All is the UI-only sentinel meaning "no filter applied". A stored value
// spelled All is indistinguishable from it, so menus omit such a value and
// selecting All shows those entries along with everything else. It is never
// written into an entry by this module.
const All = "All"

// Field selects a facet dimension of an entry.
type Field int

const (
	Place Field = iota
	Event
	Person
)

// Of returns the value of the field on e.
func (f Field) Of(e entry.Entry) string {
	switch f {
	case Place:
		return e.Place
	case Event:
		return e.Event
	case Person:
		return e.Person
	default:
		return ""
	}
}

func (f Field) String() string {
	switch f {
	case Place:
		return "place"
	case Event:
		return "event"
	case Person:
		return "person"
	default:
		return "unknown"
	}
}

// Matches reports whether want selects value: the sentinel (or an empty
// selection) matches everything, otherwise the match is exact.
func Matches(want, value string) bool {
	return want == "" || want == All || want == value
}

// Compare orders two strings the way the facet menus and views do.
type Compare func(a, b string) int

// NewCompare returns a locale-aware comparison for the BCP 47 tag. Unknown or
// empty tags fall back to the root collation order.
func NewCompare(locale string) Compare {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	c := collate.New(tag)
	return func(a, b string) int {
		return c.CompareString(a, b)
	}
}

// Values returns All followed by the distinct non-empty values of f, sorted
// with the root collation.
func Values(entries []entry.Entry, f Field) []string {
	return ValuesWith(NewCompare(""), entries, f)
}

// ValuesWith is Values with an explicit comparison.
func ValuesWith(cmp Compare, entries []entry.Entry, f Field) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, e := range entries {
		v := f.Of(e)
		if v == "" || v == All {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.SliceStable(values, func(i, j int) bool {
		if c := cmp(values[i], values[j]); c != 0 {
			return c < 0
		}
		return values[i] < values[j]
	})
	return append([]string{All}, values...)
}

// Set holds every facet menu at once.
type Set struct {
	Places []string `json:"places"`
	Events []string `json:"events"`
	People []string `json:"people"`
}

// Index computes all three facet menus.
func Index(cmp Compare, entries []entry.Entry) Set {
	return Set{
		Places: ValuesWith(cmp, entries, Place),
		Events: ValuesWith(cmp, entries, Event),
		People: ValuesWith(cmp, entries, Person),
	}
}
