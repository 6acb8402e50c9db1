// Package view filters and orders entries for display. Everything here is a
// pure function of the entries and the criteria.
package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/facet"
)

// Mode is the active sort/grouping dimension.
type Mode int

const (
	ByDate Mode = iota
	ByPlace
	ByEvent
	ByPerson
)

// Modes lists every view mode in cycling order.
func Modes() []Mode {
	return []Mode{ByDate, ByPlace, ByEvent, ByPerson}
}

func (m Mode) String() string {
	switch m {
	case ByDate:
		return "date"
	case ByPlace:
		return "place"
	case ByEvent:
		return "event"
	case ByPerson:
		return "person"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % len(Modes()))
}

// ParseMode accepts the mode names case-insensitively; "category" is an
// alias for event.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "date":
		return ByDate, nil
	case "place":
		return ByPlace, nil
	case "event", "category":
		return ByEvent, nil
	case "person":
		return ByPerson, nil
	default:
		return ByDate, fmt.Errorf("view: unknown mode %q", raw)
	}
}

// Criteria is the full filter state.
type Criteria struct {
	Query string
	// YearFrom and YearTo bound the entry year inclusively. Zero leaves that
	// side open.
	YearFrom int
	YearTo   int
	Place    string
	Event    string
	Person   string
	Mode     Mode
	// StartYear is the year assumed for entries without a parseable date.
	StartYear int
	// Locale is the BCP 47 tag used for text ordering.
	Locale string
}

// DefaultCriteria covers [startYear, endYear] with every facet set to All.
func DefaultCriteria(startYear, endYear int) Criteria {
	return Criteria{
		YearFrom:  startYear,
		YearTo:    endYear,
		Place:     facet.All,
		Event:     facet.All,
		Person:    facet.All,
		Mode:      ByDate,
		StartYear: startYear,
	}
}

// Apply returns the entries that satisfy c, ordered by c.Mode. The input is
// not modified, and entries with equal keys keep their relative order.
func Apply(entries []entry.Entry, c Criteria) []entry.Entry {
	out := make([]entry.Entry, 0, len(entries))
	q := strings.ToLower(strings.TrimSpace(c.Query))
	for _, e := range entries {
		if c.match(e, q) {
			out = append(out, e)
		}
	}
	Sort(out, c)
	return out
}

// Matches reports whether e passes the filters of c.
func (c Criteria) Matches(e entry.Entry) bool {
	return c.match(e, strings.ToLower(strings.TrimSpace(c.Query)))
}

func (c Criteria) match(e entry.Entry, q string) bool {
	y := e.Year(c.StartYear)
	if c.YearFrom != 0 && y < c.YearFrom {
		return false
	}
	if c.YearTo != 0 && y > c.YearTo {
		return false
	}
	if !facet.Matches(c.Place, e.Place) || !facet.Matches(c.Event, e.Event) || !facet.Matches(c.Person, e.Person) {
		return false
	}
	return q == "" || matchesQuery(e, q)
}

func matchesQuery(e entry.Entry, q string) bool {
	for _, field := range []string{e.Title, e.Description, e.Place, e.Event, e.Person} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	// The date is matched as written, without lower-casing.
	return strings.Contains(e.Date, q)
}

// Sort orders entries in place for the view mode of c. It is stable.
func Sort(entries []entry.Entry, c Criteria) {
	cmp := facet.NewCompare(c.Locale)
	days := make(map[string]entry.Day, len(entries))
	day := func(e entry.Entry) entry.Day {
		d, ok := days[e.Date]
		if !ok {
			d = entry.ParseDate(e.Date, c.StartYear)
			days[e.Date] = d
		}
		return d
	}

	var key func(entry.Entry) string
	switch c.Mode {
	case ByPlace:
		key = facet.Place.Of
	case ByEvent:
		key = facet.Event.Of
	case ByPerson:
		key = facet.Person.Of
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if key != nil {
			if r := compareKey(cmp, key(a), key(b)); r != 0 {
				return r < 0
			}
		}
		return day(a).Compare(day(b)) < 0
	})
}

// compareKey puts blanks first, then collates.
func compareKey(cmp facet.Compare, a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}
	return cmp(a, b)
}
