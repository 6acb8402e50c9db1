package show

import (
	"context"
	"errors"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/printers"
)

// Step moves the selection before showing.
type Step int

const (
	Stay Step = iota
	Prev
	Next
)

// Show prints one entry. ID picks the starting point within the filtered
// view; empty starts from the first visible entry.
type Show struct {
	ID      string
	Step    Step
	Output  *options.OutputOptions
	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	if n.ID != "" {
		if err := n.Service.Select(n.ID); err != nil {
			return err
		}
	}
	switch n.Step {
	case Prev:
		n.Service.Prev()
	case Next:
		n.Service.Next()
	}
	e, ok := n.Service.Current()
	if !ok {
		return app.ErrNotFound
	}

	if n.Output != nil && n.Output.JSON {
		return n.Output.WriteJSON(e)
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Detail(e)
	return nil
}
