// Package entry defines the timeline record and the helpers that keep it well formed.
package entry

import (
	"fmt"
	"time"
)

// Entry is one dated timeline record.
type Entry struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Place       string     `json:"place"`
	Event       string     `json:"event"`
	Person      string     `json:"person,omitempty"`
	Description string     `json:"description"`
	Media       []MediaRef `json:"media"`
}

// New builds an entry for the add flow. The id is derived from the title and
// the creation time and never changes afterwards.
func New(title, date, place, event string, now time.Time) Entry {
	e := Entry{
		Title: title,
		Date:  date,
		Place: place,
		Event: event,
		Media: []MediaRef{},
	}
	e.ID = NewID(e.Title, now)
	return Normalize(e)
}

// Year returns the year of the entry date, or fallback when it has none.
func (e Entry) Year(fallback int) int {
	return Year(e.Date, fallback)
}

// Images returns the image media in display order.
func (e Entry) Images() []MediaRef {
	return e.mediaOf(MediaImage)
}

// Videos returns the video media in display order.
func (e Entry) Videos() []MediaRef {
	return e.mediaOf(MediaVideo)
}

func (e Entry) mediaOf(t MediaType) []MediaRef {
	out := make([]MediaRef, 0, len(e.Media))
	for _, m := range e.Media {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// Clone returns a deep copy so callers can mutate media without touching the store.
func (e Entry) Clone() Entry {
	cp := e
	cp.Media = make([]MediaRef, len(e.Media))
	copy(cp.Media, e.Media)
	return cp
}

func (e Entry) String() string {
	if e.Date == "" {
		return e.Title
	}
	return fmt.Sprintf("%s  %s", e.Date, e.Title)
}
