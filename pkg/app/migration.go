package app

import (
	"context"
	"strings"

	"tableflip.dev/timeline/pkg/facet"
)

// RenameFacet rewrites every entry whose field equals from so it reads to
// instead, returning how many entries changed. Renaming to an empty value
// clears the field; the sentinel All is never written. A stored value spelled
// All can be renamed away, which leaves the active filter untouched.
func (s *Service) RenameFacet(ctx context.Context, field facet.Field, from, to string) (int, error) {
	if s.Store == nil {
		return 0, errNoStore
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	to = strings.TrimSpace(to)
	if from == "" || to == facet.All || from == to {
		return 0, nil
	}
	changed := 0
	for _, e := range s.Store.All() {
		if field.Of(e) != from {
			continue
		}
		switch field {
		case facet.Place:
			e.Place = to
		case facet.Event:
			e.Event = to
		case facet.Person:
			e.Person = to
		}
		if s.Store.Update(e) {
			changed++
		}
	}
	if changed > 0 {
		s.log().Debugw("renamed facet", "field", field.String(), "from", from, "to", to, "count", changed)
		if crit := s.criteriaFor(field); from != facet.All && *crit == from {
			*crit = to
			if to == "" {
				*crit = facet.All
			}
		}
		s.repair()
	}
	return changed, nil
}

func (s *Service) criteriaFor(field facet.Field) *string {
	switch field {
	case facet.Event:
		return &s.Criteria.Event
	case facet.Person:
		return &s.Criteria.Person
	default:
		return &s.Criteria.Place
	}
}
