package info

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/printers"
	"tableflip.dev/timeline/pkg/store"
	"tableflip.dev/timeline/pkg/view"
)

type Info struct {
	Config  store.Config
	Mode    view.Mode
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	out := color.Output

	if override := os.Getenv("TIMELINE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TIMELINE_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "TIMELINE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintf(out, "Config.years: %d-%d\n", n.Config.StartYear(), n.Config.EndYear())
	_, _ = fmt.Fprintln(out, "Config.locale:", n.Config.Locale())

	if n.Service == nil {
		return errors.New("failed to create the timeline service")
	}
	if n.Service.Persistence != nil {
		_, _ = fmt.Fprintln(out, "Slot:", n.Service.Persistence.Path())
	}

	r, err := n.Service.Report(ctx, n.Mode)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Entries: %d (%d undated)\n", r.Total, r.Undated)
	if r.FirstYear != 0 {
		_, _ = fmt.Fprintf(out, "Span: %d-%d\n", r.FirstYear, r.LastYear)
	}
	_, _ = fmt.Fprintf(out, "Media: %d images, %d videos, %d inline\n", r.Images, r.Videos, r.Embedded)

	if len(r.Sections) > 0 {
		_, _ = fmt.Fprintf(out, "\nBy %s:\n", n.Mode)
		for _, s := range r.Sections {
			heading := s.Heading
			if heading == "" {
				heading = "(none)"
			}
			_, _ = fmt.Fprintf(out, "  %-24s %d\n", heading, s.Count)
		}
	}

	if n.Mode == view.ByDate {
		count := make(map[int]int)
		for _, e := range n.Service.Store.All() {
			if y := e.Year(0); y != 0 {
				count[y]++
			}
		}
		if len(count) > 0 {
			_, _ = fmt.Fprintln(out, "")
			pp := printers.PrettyPrint{}
			pp.Years(count)
		}
	}
	return nil
}
