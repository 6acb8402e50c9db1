// Package facets prints the place, event and person menus.
package facets

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/facet"
)

type Facets struct {
	Output  *options.OutputOptions
	Service *app.Service
}

// Do renders every facet as a table of value and entry count.
func (k *Facets) Do(ctx context.Context) error {
	if k.Service == nil {
		return errors.New("can not list facets, no service")
	}
	set := k.Service.Facets()
	if k.Output != nil && k.Output.JSON {
		return k.Output.WriteJSON(set)
	}

	all := k.Service.Store.All()
	_, _ = fmt.Fprintln(color.Output, "")
	for _, f := range []struct {
		title  string
		field  facet.Field
		values []string
	}{
		{"Places", facet.Place, set.Places},
		{"Events", facet.Event, set.Events},
		{"People", facet.Person, set.People},
	} {
		counts := make(map[string]int, len(f.values))
		for _, e := range all {
			counts[f.field.Of(e)]++
		}
		k.Facet(ctx, f.title, f.values, counts, len(all))
		_, _ = fmt.Fprintln(color.Output, "")
	}
	return nil
}

// Facet renders one facet table.
func (k *Facets) Facet(_ context.Context, title string, values []string, counts map[string]int, total int) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Entries"), bold.Sprint(title))
	for _, v := range values {
		n := counts[v]
		if v == facet.All {
			n = total
		}
		tbl.AddRow(n, v)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
