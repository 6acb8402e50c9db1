package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
)

// Export writes the whole store as a JSON document. An empty File writes to
// the suggested name in Dir; "-" writes to Stdout.
type Export struct {
	File    string
	Dir     string
	Stdout  io.Writer
	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	data, name, err := n.Service.Export(ctx)
	if err != nil {
		return err
	}
	if n.File == "-" {
		out := n.Stdout
		if out == nil {
			out = os.Stdout
		}
		_, err := out.Write(data)
		return err
	}
	path := n.File
	if path == "" {
		path = filepath.Join(n.Dir, name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	_, _ = fmt.Fprintf(color.Output, "Exported %d entries to %s\n", n.Service.Store.Len(), path)
	return nil
}
