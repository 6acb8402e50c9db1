package browse

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the browser.
type Theme struct {
	Header  lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Faint   lipgloss.Style
	Active  lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	Panel   lipgloss.Style
	Divider string

	startYear, endYear int
	from, to           colorful.Color
}

// NewTheme returns the built-in theme. Year accents blend from an old sepia
// to a bright teal across [startYear, endYear].
func NewTheme(noColor bool, startYear, endYear int) Theme {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	from, _ := colorful.Hex("#a0522d")
	to, _ := colorful.Hex("#2ec4b6")
	return Theme{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Title:  lipgloss.NewStyle().Bold(true).Underline(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(8).Align(lipgloss.Right),
		Faint:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Active: lipgloss.NewStyle().Reverse(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Panel:  lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1),
		Divider: "│",

		startYear: startYear,
		endYear:   endYear,
		from:      from,
		to:        to,
	}
}

// Year styles a year with its position on the configured span.
func (t Theme) Year(year int) lipgloss.Style {
	span := t.endYear - t.startYear
	pos := 0.0
	if span > 0 {
		pos = float64(year-t.startYear) / float64(span)
	}
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	c := t.from.BlendLab(t.to, pos).Clamped()
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex()))
}
