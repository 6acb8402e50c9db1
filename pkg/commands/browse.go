package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/browse"
)

func addBrowse(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	var noWatch, noColor bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the terminal browser.",
		Long: `Step through the timeline one entry at a time.

  ←/→   previous/next entry, wrapping around
  /     search
  v     cycle the ordering: date, place, event, person
  p c o cycle the place, category and person filters
  esc   clear filters
  x     delete the current entry
  q     quit`,
		Example: `
timeline browse
timeline browse --view place --from 1900
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !options.IsTerminal() {
				return errors.New("browse needs an interactive terminal")
			}
			ctx := context.Background()
			svc, _, err := loadService(ctx)
			if err != nil {
				return err
			}
			svc.SetCriteria(fo.Criteria(svc.Criteria))
			b := browse.Browse{
				Service: svc,
				Logger:  svc.Logger,
				Watch:   !noWatch && !ephemeral,
				NoColor: noColor,
			}
			return b.Do(ctx)
		},
	}

	options.AddFilterArgs(cmd, fo)
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload when the data file changes.")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Render without colors.")
	registerFacetCompletions(cmd)

	topLevel.AddCommand(cmd)
}
