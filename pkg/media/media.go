// Package media maps video links to embeddable player URLs for display.
package media

import (
	"net/url"
	"regexp"
	"strings"
)

// Embed is how a video reference should be shown.
type Embed struct {
	URL string
	// Embedded is true when URL points at a hosted player rather than the
	// original file.
	Embedded bool
}

var (
	youtubeID = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)
	vimeoID   = regexp.MustCompile(`^\d+$`)
)

// Resolve recognizes YouTube and Vimeo links. Everything else, including
// data: URLs, passes through for native playback.
func Resolve(raw string) Embed {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return Embed{URL: raw}
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtube.com", "youtube-nocookie.com":
		id := u.Query().Get("v")
		if id == "" {
			id = afterPrefix(u.Path, "/embed/", "/shorts/", "/live/")
		}
		if youtubeID.MatchString(id) {
			return Embed{URL: "https://www.youtube.com/embed/" + id, Embedded: true}
		}
	case "youtu.be":
		if id := firstSegment(u.Path); youtubeID.MatchString(id) {
			return Embed{URL: "https://www.youtube.com/embed/" + id, Embedded: true}
		}
	case "vimeo.com", "player.vimeo.com":
		if id := lastSegment(u.Path); vimeoID.MatchString(id) {
			return Embed{URL: "https://player.vimeo.com/video/" + id, Embedded: true}
		}
	}
	return Embed{URL: raw}
}

func afterPrefix(path string, prefixes ...string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return firstSegment(strings.TrimPrefix(path, p))
		}
	}
	return ""
}

func firstSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}

func lastSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
