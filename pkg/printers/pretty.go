package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/media"
	"tableflip.dev/timeline/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
	// Width wraps descriptions; zero means 80.
	Width int
	// Out defaults to color.Output.
	Out io.Writer
}

const idWidth = len("some-entry-title-1709979072000-a1b2c3  ")

var spacing = strings.Repeat(" ", idWidth)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return 80
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints one row per entry: date, title and the place/event/person
// context.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.FgCyan)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width())
	for _, e := range entries {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(e.ID))
		}
		row = append(row, d.Sprint(dateOrBlank(e.Date)), e.Title, f.Sprint(contextLine(e)))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Sections prints a grouped view with one heading per section.
func (pp *PrettyPrint) Sections(sections []view.Section) {
	if len(sections) == 0 {
		pp.Entries()
		return
	}
	for _, s := range sections {
		pp.TitleWithCount(s.Heading, len(s.Entries))
		pp.Entries(s.Entries...)
	}
}

// Detail prints a single entry in full, with the description wrapped and
// video links resolved to their players.
func (pp *PrettyPrint) Detail(e entry.Entry) {
	w := pp.out()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	if pp.ShowID {
		_, _ = faint.Fprintln(w, e.ID)
	}
	_, _ = bold.Fprintln(w, e.Title)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("date"), dateOrBlank(e.Date))
	tbl.AddRow(faint.Sprint("place"), e.Place)
	tbl.AddRow(faint.Sprint("event"), e.Event)
	if e.Person != "" {
		tbl.AddRow(faint.Sprint("person"), e.Person)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)

	if desc := strings.TrimSpace(e.Description); desc != "" {
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, indent.String(wordwrap.String(desc, pp.width()-2), 2))
	}

	if len(e.Media) > 0 {
		_, _ = fmt.Fprintln(w, "")
		mt := uitable.New()
		mt.Separator = "  "
		for _, m := range e.Media {
			mt.AddRow(faint.Sprint(string(m.Type)), mediaURL(m), m.Caption)
		}
		_, _ = fmt.Fprintln(w, mt)
	}
	pp.NewLine()
}

func mediaURL(m entry.MediaRef) string {
	switch {
	case m.IsDataURL():
		return "(inline " + strings.SplitN(strings.TrimPrefix(m.URL, "data:"), ";", 2)[0] + ")"
	case m.Type == entry.MediaVideo:
		return media.Resolve(m.URL).URL
	default:
		return m.URL
	}
}

func contextLine(e entry.Entry) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Place, e.Event, e.Person} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}

func dateOrBlank(date string) string {
	if date == "" {
		return "----------"
	}
	return date
}
