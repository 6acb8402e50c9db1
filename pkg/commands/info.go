package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	mode := &options.ViewModeValue{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the timeline and where it is stored.",
		Example: `
timeline info
timeline info --view place
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, cfg, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  cfg,
				Mode:    mode.Mode,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().Var(mode, "view", "Group the summary by date, place, event or person.")

	topLevel.AddCommand(cmd)
}
