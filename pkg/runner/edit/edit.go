package edit

import (
	"context"
	"errors"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/printers"
)

// Edit replaces an entry with the result of Change applied to it.
type Edit struct {
	ID      string
	Change  func(entry.Entry) entry.Entry
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	e, ok := n.Service.Store.Get(n.ID)
	if !ok {
		return app.ErrNotFound
	}
	if n.Change != nil {
		e = n.Change(e)
	}
	e.ID = n.ID
	updated, err := n.Service.Update(ctx, e)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Detail(updated)
	return nil
}
