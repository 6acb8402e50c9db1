package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/snake"
)

var errNeedsYes = errors.New("not a terminal, pass --yes to confirm")

// confirmer returns the question asked before a destructive action, or nil
// when --yes already answered it.
func confirmer(cmd *cobra.Command, co *options.ConfirmOptions) func(label string) (bool, error) {
	if co.Yes {
		return nil
	}
	return func(label string) (bool, error) {
		if !options.IsTerminal() {
			return false, errNeedsYes
		}
		return snake.Confirm(label, cmd.InOrStdin(), cmd.OutOrStdout())
	}
}
