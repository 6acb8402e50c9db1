package add

import (
	"context"
	"errors"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/printers"
)

type Add struct {
	Draft   app.Draft
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	e, err := n.Service.Add(ctx, n.Draft)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Added")
	pp.Entries(e)
	return nil
}
