package list

import (
	"context"
	"errors"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/printers"
	"tableflip.dev/timeline/pkg/view"
)

type List struct {
	ShowID  bool
	Group   bool
	Output  *options.OutputOptions
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	seq := n.Service.View()
	if n.Output != nil && n.Output.JSON {
		if seq == nil {
			seq = []entry.Entry{}
		}
		return n.Output.WriteJSON(seq)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	if n.Group {
		pp.Sections(view.Group(seq, n.Service.Criteria, "(none)"))
		return nil
	}
	pp.TitleWithCount("Timeline by "+n.Service.Criteria.Mode.String(), len(seq))
	pp.Entries(seq...)
	return nil
}
