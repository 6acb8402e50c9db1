package browse

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Search  key.Binding
	View    key.Binding
	Place   key.Binding
	Event   key.Binding
	Person  key.Binding
	Reset   key.Binding
	Delete  key.Binding
	Reload  key.Binding
	Quit    key.Binding
	Confirm key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h", "k", "up"), key.WithHelp("←", "prev")),
		Next:    key.NewBinding(key.WithKeys("right", "l", "j", "down"), key.WithHelp("→", "next")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		View:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view")),
		Place:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "place")),
		Event:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Person:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "person")),
		Reset:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filters")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Search, k.View, k.Place, k.Event, k.Person, k.Reset, k.Delete, k.Quit}
}
