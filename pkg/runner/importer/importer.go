package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/transfer"
)

// Import reads a document from File ("-" for stdin) into the store.
// Replacing discards every existing entry, so Confirm is asked first when set.
type Import struct {
	File    string
	Mode    transfer.Mode
	Confirm func(existing int) (bool, error)
	Stdin   io.Reader
	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	data, err := n.read()
	if err != nil {
		return err
	}
	if n.Mode == transfer.Replace && n.Confirm != nil && n.Service.Store.Len() > 0 {
		yes, err := n.Confirm(n.Service.Store.Len())
		if err != nil {
			return err
		}
		if !yes {
			_, _ = fmt.Fprintln(color.Output, "Nothing imported.")
			return nil
		}
	}
	count, err := n.Service.Import(ctx, data, n.Mode)
	if err != nil {
		return fmt.Errorf("import %s: %w", n.File, err)
	}
	_, _ = fmt.Fprintf(color.Output, "Imported %d entries (%s), %d in store.\n", count, n.Mode, n.Service.Store.Len())
	return nil
}

func (n *Import) read() ([]byte, error) {
	if n.File == "-" {
		in := n.Stdin
		if in == nil {
			in = os.Stdin
		}
		return io.ReadAll(in)
	}
	return os.ReadFile(n.File)
}
