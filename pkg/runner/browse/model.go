package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/facet"
	"tableflip.dev/timeline/pkg/media"
	"tableflip.dev/timeline/pkg/store"
	"tableflip.dev/timeline/pkg/view"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeConfirmDelete
)

// messages
type slotChangedMsg struct{ ev store.Event }
type watchClosedMsg struct{}

// Model contains UI state. The service is only touched from Update.
type Model struct {
	ctx   context.Context
	svc   *app.Service
	theme Theme
	keys  keyMap
	mode  mode

	input     textinput.Model
	prevQuery string

	status string
	err    error

	events <-chan store.Event

	width  int
	height int
}

// New creates a browser model backed by svc.
func New(ctx context.Context, svc *app.Service, theme Theme) Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 256

	return Model{
		ctx:    ctx,
		svc:    svc,
		theme:  theme,
		keys:   defaultKeys(),
		mode:   modeNormal,
		input:  ti,
		width:  100,
		height: 30,
	}
}

// Init starts listening for slot changes when a watch channel is set.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return watchClosedMsg{}
		}
		return slotChangedMsg{ev: ev}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case slotChangedMsg:
		m.reload("Reloaded after change on disk")
		return m, m.waitForChange()
	case watchClosedMsg:
		m.events = nil
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg), nil
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.svc.Prev()
		m.status = ""
	case key.Matches(msg, m.keys.Next):
		m.svc.Next()
		m.status = ""
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.prevQuery = m.svc.Criteria.Query
		m.input.SetValue(m.prevQuery)
		m.input.Focus()
	case key.Matches(msg, m.keys.View):
		c := m.svc.Criteria
		c.Mode = c.Mode.Next()
		m.svc.SetCriteria(c)
		m.status = "Ordered by " + c.Mode.String()
	case key.Matches(msg, m.keys.Place):
		m.cycleFacet(facet.Place)
	case key.Matches(msg, m.keys.Event):
		m.cycleFacet(facet.Event)
	case key.Matches(msg, m.keys.Person):
		m.cycleFacet(facet.Person)
	case key.Matches(msg, m.keys.Reset):
		c := m.svc.Criteria
		mode := c.Mode
		c = view.DefaultCriteria(c.StartYear, c.YearTo)
		c.Mode = mode
		c.Locale = m.svc.Criteria.Locale
		m.svc.SetCriteria(c)
		m.status = "Filters cleared"
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.svc.Current(); ok {
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, m.keys.Reload):
		m.reload("Reloaded")
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = modeNormal
		m.input.Blur()
		m.status = fmt.Sprintf("%d matching", len(m.svc.View()))
		return m, nil
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		m.setQuery(m.prevQuery)
		m.status = "Search cancelled"
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.setQuery(m.input.Value())
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) Model {
	m.mode = modeNormal
	if !key.Matches(msg, m.keys.Confirm) {
		m.status = "Delete cancelled"
		return m
	}
	cur, ok := m.svc.Current()
	if !ok {
		return m
	}
	if err := m.svc.Delete(m.ctx, cur.ID); err != nil {
		m.err = err
		return m
	}
	m.status = "Deleted " + cur.Title
	return m
}

func (m *Model) setQuery(q string) {
	c := m.svc.Criteria
	c.Query = q
	m.svc.SetCriteria(c)
}

func (m *Model) reload(status string) {
	if err := m.svc.Reload(m.ctx); err != nil {
		m.err = err
		return
	}
	m.status = status
}

// cycleFacet steps the filter for f through All and every value in the store.
func (m *Model) cycleFacet(f facet.Field) {
	set := m.svc.Facets()
	c := m.svc.Criteria
	var values []string
	var cur *string
	switch f {
	case facet.Place:
		values, cur = set.Places, &c.Place
	case facet.Event:
		values, cur = set.Events, &c.Event
	default:
		values, cur = set.People, &c.Person
	}
	next := facet.All
	for i, v := range values {
		if v == *cur && i+1 < len(values) {
			next = values[i+1]
			break
		}
	}
	*cur = next
	m.svc.SetCriteria(c)
	m.status = fmt.Sprintf("%s: %s", f, next)
}

// View renders the header, the list beside the detail, and the footer.
func (m Model) View() string {
	seq := m.svc.View()
	header := m.header(seq)
	footer := m.footer()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	listWidth := m.width / 3
	if listWidth < 20 {
		listWidth = 20
	}
	detailWidth := m.width - listWidth - 3
	if detailWidth < 20 {
		detailWidth = 20
	}

	list := m.list(seq, listWidth, bodyHeight)
	detail := m.detail(detailWidth)
	divider := m.theme.Faint.Render(strings.TrimRight(strings.Repeat(m.theme.Divider+"\n", bodyHeight), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Height(bodyHeight).Render(list),
		divider,
		m.theme.Panel.Width(detailWidth).Render(detail),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) header(seq []entry.Entry) string {
	c := m.svc.Criteria
	pos := "0/0"
	if i := m.svc.Cursor.Index(seq); i >= 0 {
		pos = fmt.Sprintf("%d/%d", i+1, len(seq))
	} else if len(seq) > 0 {
		pos = fmt.Sprintf("-/%d", len(seq))
	}
	parts := []string{
		m.theme.Header.Render("timeline"),
		"view: " + c.Mode.String(),
		pos,
		fmt.Sprintf("%d–%d", c.YearFrom, c.YearTo),
	}
	if c.Query != "" {
		parts = append(parts, fmt.Sprintf("query: %q", c.Query))
	}
	for _, f := range []struct{ name, v string }{{"place", c.Place}, {"category", c.Event}, {"person", c.Person}} {
		if f.v != "" && f.v != facet.All {
			parts = append(parts, f.name+": "+f.v)
		}
	}
	return strings.Join(parts, m.theme.Faint.Render(" · "))
}

// list shows a window of the view centred on the selection.
func (m Model) list(seq []entry.Entry, width, height int) string {
	if len(seq) == 0 {
		return m.theme.Faint.Render("no entries")
	}
	sel := m.svc.Cursor.Index(seq)
	start := 0
	if sel >= height/2 {
		start = sel - height/2
	}
	if start+height > len(seq) {
		start = len(seq) - height
	}
	if start < 0 {
		start = 0
	}
	lines := make([]string, 0, height)
	for i := start; i < len(seq) && len(lines) < height; i++ {
		e := seq[i]
		label := truncate.StringWithTail(listLabel(e, m.svc.Criteria), uint(width-1), "…")
		if i == sel {
			label = m.theme.Active.Render(label)
		}
		lines = append(lines, label)
	}
	return strings.Join(lines, "\n")
}

func listLabel(e entry.Entry, c view.Criteria) string {
	var k string
	switch c.Mode {
	case view.ByPlace:
		k = e.Place
	case view.ByEvent:
		k = e.Event
	case view.ByPerson:
		k = e.Person
	default:
		k = e.Date
	}
	if k == "" {
		return e.Title
	}
	return k + "  " + e.Title
}

func (m Model) detail(width int) string {
	e, ok := m.svc.Current()
	if !ok {
		return m.theme.Faint.Render("Nothing selected. Add entries with `timeline add` or clear the filters.")
	}
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(e.Title))
	b.WriteString("\n")
	if e.Date != "" {
		b.WriteString(m.theme.Year(e.Year(m.svc.Criteria.StartYear)).Render(e.Date))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, f := range []struct{ label, v string }{{"place", e.Place}, {"category", e.Event}, {"person", e.Person}} {
		if f.v == "" {
			continue
		}
		b.WriteString(m.theme.Label.Render(f.label) + "  " + f.v + "\n")
	}
	if d := strings.TrimSpace(e.Description); d != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(d, width-2))
		b.WriteString("\n")
	}
	if len(e.Media) > 0 {
		b.WriteString("\n")
		for _, ref := range e.Media {
			b.WriteString(m.theme.Faint.Render(string(ref.Type)) + "  " + mediaLine(ref, width-8) + "\n")
		}
	}
	return b.String()
}

func mediaLine(ref entry.MediaRef, width int) string {
	var line string
	switch {
	case ref.IsDataURL():
		line = "inline"
	case ref.Type == entry.MediaVideo:
		line = media.Resolve(ref.URL).URL
	default:
		line = ref.URL
	}
	if ref.Caption != "" {
		line += "  " + ref.Caption
	}
	if width < 1 {
		width = 1
	}
	return truncate.StringWithTail(line, uint(width), "…")
}

func (m Model) footer() string {
	switch m.mode {
	case modeSearch:
		return m.input.View()
	case modeConfirmDelete:
		cur, _ := m.svc.Current()
		return m.theme.Error.Render(fmt.Sprintf("Delete %q? y/N", cur.Title))
	}
	if m.err != nil {
		return m.theme.Error.Render("ERR: " + m.err.Error())
	}
	help := make([]string, 0, len(m.keys.short()))
	for _, k := range m.keys.short() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	line := m.theme.Help.Render(strings.Join(help, "  "))
	if m.status != "" {
		line = m.theme.Status.Render(m.status) + "\n" + line
	}
	return line
}
