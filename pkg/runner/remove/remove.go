package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
)

// Remove deletes one entry. Confirm, when set, is asked first and a false
// answer leaves the store alone.
type Remove struct {
	ID      string
	Confirm func(title string) (bool, error)
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	e, ok := n.Service.Store.Get(n.ID)
	if !ok {
		return app.ErrNotFound
	}
	if n.Confirm != nil {
		yes, err := n.Confirm(e.Title)
		if err != nil {
			return err
		}
		if !yes {
			_, _ = fmt.Fprintln(color.Output, "Nothing removed.")
			return nil
		}
	}
	if err := n.Service.Delete(ctx, n.ID); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintf(color.Output, "Removed %s\n", e.String())
	return nil
}
