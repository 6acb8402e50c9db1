package rename

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/facet"
)

// Rename rewrites a place, event or person value across every entry.
type Rename struct {
	Field   facet.Field
	From    string
	To      string
	Service *app.Service
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename, no service")
	}
	count, err := n.Service.RenameFacet(ctx, n.Field, n.From, n.To)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Renamed %s %q to %q on %d entries.\n", n.Field, n.From, n.To, count)
	return nil
}
