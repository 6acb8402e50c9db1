// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/facet"
	"tableflip.dev/timeline/pkg/view"
)

// FilterOptions captures the filter and ordering flags shared by list, show
// and browse.
type FilterOptions struct {
	Query  string
	From   int
	To     int
	Place  string
	Event  string
	Person string
	View   ViewModeValue
	Group  bool
}

// AddFilterArgs wires filter-related flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Case-insensitive text search over title, description, place, event and person.")
	cmd.Flags().IntVar(&o.From, "from", 0,
		"Earliest year to include. Defaults to the configured start year.")
	cmd.Flags().IntVar(&o.To, "to", 0,
		"Latest year to include. Defaults to the configured end year.")
	cmd.Flags().StringVar(&o.Place, "place", facet.All,
		"Only entries at this place.")
	cmd.Flags().StringVar(&o.Event, "event", facet.All,
		"Only entries of this event category.")
	cmd.Flags().StringVar(&o.Person, "person", facet.All,
		"Only entries about this person.")
	cmd.Flags().Var(&o.View, "view",
		"Ordering, one of date, place, event or person.")
}

// AddGroupArg registers the grouped rendering flag.
func AddGroupArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVarP(&o.Group, "group", "g", false,
		"Print a heading per place, event, person or year.")
}

// Criteria overlays the flags on base, which carries the configured year
// window and locale.
func (o *FilterOptions) Criteria(base view.Criteria) view.Criteria {
	c := base
	c.Query = o.Query
	if o.From != 0 {
		c.YearFrom = o.From
	}
	if o.To != 0 {
		c.YearTo = o.To
	}
	c.Place = o.Place
	c.Event = o.Event
	c.Person = o.Person
	c.Mode = o.View.Mode
	return c
}
