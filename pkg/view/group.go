package view

import (
	"strconv"

	"tableflip.dev/timeline/pkg/entry"
)

// Section is a run of consecutive entries sharing a heading.
type Section struct {
	Heading string
	Entries []entry.Entry
}

// Group splits an already sorted sequence into headed sections: the year in
// date mode, otherwise the place, event or person. Blank values are headed by
// blank.
func Group(entries []entry.Entry, c Criteria, blank string) []Section {
	var sections []Section
	for _, e := range entries {
		h := heading(e, c)
		if h == "" {
			h = blank
		}
		if n := len(sections); n > 0 && sections[n-1].Heading == h {
			sections[n-1].Entries = append(sections[n-1].Entries, e)
			continue
		}
		sections = append(sections, Section{Heading: h, Entries: []entry.Entry{e}})
	}
	return sections
}

func heading(e entry.Entry, c Criteria) string {
	switch c.Mode {
	case ByPlace:
		return e.Place
	case ByEvent:
		return e.Event
	case ByPerson:
		return e.Person
	default:
		return strconv.Itoa(e.Year(c.StartYear))
	}
}
