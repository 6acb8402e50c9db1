package app

import (
	"context"
	"sort"

	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/view"
)

// ReportSection groups the entries sharing one heading of a view mode.
type ReportSection struct {
	Heading string
	Count   int
}

// ReportResult summarizes the store for the info command.
type ReportResult struct {
	Total    int
	Visible  int
	Undated  int
	Images   int
	Videos   int
	Embedded int
	// FirstYear and LastYear span the dated entries; both are zero when none
	// carry a year.
	FirstYear int
	LastYear  int
	Sections  []ReportSection
}

// Report counts the store and groups the visible entries by mode. The
// sections follow the view order, so place, event and person groups are
// collated and year groups are chronological.
func (s *Service) Report(ctx context.Context, mode view.Mode) (ReportResult, error) {
	if s.Store == nil {
		return ReportResult{}, errNoStore
	}
	if err := ctx.Err(); err != nil {
		return ReportResult{}, err
	}
	all := s.Store.All()
	r := ReportResult{Total: len(all)}
	years := make([]int, 0, len(all))
	for _, e := range all {
		r.Images += len(e.Images())
		r.Videos += len(e.Videos())
		for _, m := range e.Media {
			if m.IsDataURL() {
				r.Embedded++
			}
		}
		if y := entry.Year(e.Date, 0); y != 0 {
			years = append(years, y)
		} else {
			r.Undated++
		}
	}
	if len(years) > 0 {
		sort.Ints(years)
		r.FirstYear, r.LastYear = years[0], years[len(years)-1]
	}

	c := s.Criteria
	c.Mode = mode
	visible := view.Apply(all, c)
	r.Visible = len(visible)
	for _, sec := range view.Group(visible, c, "") {
		r.Sections = append(r.Sections, ReportSection{Heading: sec.Heading, Count: len(sec.Entries)})
	}
	return r, nil
}
