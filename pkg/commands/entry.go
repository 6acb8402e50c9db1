package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/runner/add"
	"tableflip.dev/timeline/pkg/runner/edit"
	"tableflip.dev/timeline/pkg/runner/remove"
	"tableflip.dev/timeline/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to the timeline.",
		Example: `
timeline add --title "Battle of Pichincha" --date 1822-05-24 --place Quito --event War
timeline add -t "Founding" -d 1535 -p Lima -e Culture --image "https://host/plaza.jpg::Plaza"
timeline add -i
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return snake.PromptMissing(cmd, options.EntryFlags, "title")
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
			a := add.Add{
				Draft: app.Draft{
					Title:       eo.Title,
					Date:        eo.Date,
					Place:       eo.Place,
					Event:       eo.Event,
					Person:      eo.Person,
					Description: eo.Description,
					Media:       eo.Media(),
				},
				ShowID:  io.ShowID,
				Service: svc,
			}
			return output.HandleError(a.Do(ctx))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.InteractiveArgs(cmd, i)
	options.AddShowIDArgs(cmd, io)
	registerFacetCompletions(cmd)

	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change fields of an entry. Only the given flags change.",
		Example: `
timeline edit --id battle-of-pichincha-1709979072000 --place "Quito, Ecuador"
timeline edit --id founding-1709979072000 --video "https://youtu.be/ID" --video "https://vimeo.com/123"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return fmt.Errorf("--id is required")
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return snake.PromptMissing(cmd, options.EntryFlags)
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
			e := edit.Edit{
				ID: io.ID,
				Change: func(cur entry.Entry) entry.Entry {
					return eo.Apply(cmd, cur)
				},
				Service: svc,
			}
			return output.HandleError(e.Do(ctx))
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddEntryArgs(cmd, eo)
	options.InteractiveArgs(cmd, i)
	registerIDCompletion(cmd)
	registerFacetCompletions(cmd)

	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an entry permanently.",
		Example: `
timeline rm --id founding-1709979072000
timeline rm --id founding-1709979072000 --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return fmt.Errorf("--id is required")
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
			r := remove.Remove{ID: io.ID, Service: svc}
			if ask := confirmer(cmd, co); ask != nil {
				r.Confirm = func(title string) (bool, error) {
					return ask(fmt.Sprintf("Remove %q", title))
				}
			}
			return output.HandleError(r.Do(ctx))
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddConfirmArgs(cmd, co)
	registerIDCompletion(cmd)

	topLevel.AddCommand(cmd)
}
