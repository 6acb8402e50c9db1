package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/export"
	"tableflip.dev/timeline/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	mode := &options.ImportModeValue{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import entries from a JSON document.",
		Long: base.Wrap80(`Import entries from a JSON array. With --mode merge (the default)
entries sharing an id are replaced and new ones appended. With --mode replace
the timeline becomes exactly the document. Use - to read stdin.`),
		Example: `
timeline import timeline-20240309-101112.json
timeline import backup.json --mode replace --yes
cat entries.json | timeline import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := loadService(ctx)
			if err != nil {
				return err
			}
			i := importer.Import{
				File:    args[0],
				Mode:    mode.Mode,
				Stdin:   cmd.InOrStdin(),
				Service: svc,
			}
			if ask := confirmer(cmd, co); ask != nil && args[0] != "-" {
				i.Confirm = func(existing int) (bool, error) {
					return ask(fmt.Sprintf("Replace all %d entries", existing))
				}
			}
			return output.HandleError(i.Do(ctx))
		},
	}

	cmd.Flags().Var(mode, "mode", "How to combine with existing entries, one of merge or replace.")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"merge", "replace"}, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every entry as a JSON document.",
		Example: `
timeline export
timeline export -o backup.json
timeline export -o - | jq length
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, _, err := loadService(ctx)
			if err != nil {
				return err
			}
			e := export.Export{File: file, Stdout: cmd.OutOrStdout(), Service: svc}
			return output.HandleError(e.Do(ctx))
		},
	}

	cmd.Flags().StringVarP(&file, "output", "o", "",
		"File to write. Defaults to timeline-YYYYMMDD-HHMMSS.json in the current directory; - writes stdout.")

	topLevel.AddCommand(cmd)
}
