// Package snake fills in command flags interactively.
package snake

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// PromptMissing asks for every named string flag the user did not pass on
// the command line and sets it on cmd. Names listed in required must get a
// non-empty answer.
func PromptMissing(cmd *cobra.Command, names []string, required ...string) error {
	must := make(map[string]bool, len(required))
	for _, r := range required {
		must[r] = true
	}
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return fmt.Errorf("snake: unknown flag %q", name)
		}
		if f.Changed || f.Value.Type() != "string" {
			continue
		}
		v, err := PromptFlagString(f, must[name], cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := cmd.Flags().Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
