package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/facet"
	"tableflip.dev/timeline/pkg/runner/facets"
	"tableflip.dev/timeline/pkg/runner/list"
	"tableflip.dev/timeline/pkg/runner/rename"
	"tableflip.dev/timeline/pkg/runner/show"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries, filtered and ordered.",
		Example: `
timeline list
timeline list --view place --group
timeline list --from 1800 --to 1850 --event War
timeline list -q "perón" --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := loadService(ctx)
			if err != nil {
				return err
			}
			svc.SetCriteria(fo.Criteria(svc.Criteria))
			l := list.List{
				ShowID:  io.ShowID,
				Group:   fo.Group,
				Output:  output,
				Service: svc,
			}
			return output.HandleError(l.Do(ctx))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddGroupArg(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	registerFacetCompletions(cmd)

	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	var prev, next bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one entry in full, or its neighbour in the filtered view.",
		Example: `
timeline show --id founding-1709979072000
timeline show --id founding-1709979072000 --next --view place
timeline show --prev
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if prev && next {
				return fmt.Errorf("--prev and --next are exclusive")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := loadService(ctx)
			if err != nil {
				return err
			}
			svc.SetCriteria(fo.Criteria(svc.Criteria))
			s := show.Show{ID: io.ID, Output: output, Service: svc}
			switch {
			case prev:
				s.Step = show.Prev
			case next:
				s.Step = show.Next
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&prev, "prev", false, "Show the entry before --id, wrapping around.")
	cmd.Flags().BoolVar(&next, "next", false, "Show the entry after --id, wrapping around.")
	registerIDCompletion(cmd)
	registerFacetCompletions(cmd)

	topLevel.AddCommand(cmd)
}

func addFacets(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the places, events and people in the timeline.",
		Example: `
timeline facets
timeline facets --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := loadService(ctx)
			if err != nil {
				return err
			}
			f := facets.Facets{Output: output, Service: svc}
			return output.HandleError(f.Do(ctx))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "rename (place|event|person) FROM TO",
		Short:     "Rename a place, event or person on every entry.",
		ValidArgs: []string{"place", "event", "person"},
		Example: `
timeline rename place "Lima" "Lima, Peru"
timeline rename person "J. Perón" "Juan Perón"
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := parseField(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := loadService(ctx)
			if err != nil {
				return err
			}
			r := rename.Rename{Field: field, From: args[1], To: args[2], Service: svc}
			return output.HandleError(r.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}

func parseField(raw string) (facet.Field, error) {
	switch raw {
	case "place":
		return facet.Place, nil
	case "event", "category":
		return facet.Event, nil
	case "person":
		return facet.Person, nil
	}
	return facet.Place, fmt.Errorf("unknown field %q, want place, event or person", raw)
}
