package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	Shell    key.Binding
	Escape   key.Binding
	Filter   key.Binding
	Refresh  key.Binding
	Sort     key.Binding
	Previous key.Binding
	Wrap     key.Binding
	Copy     key.Binding
	Tab1     key.Binding
	Tab2     key.Binding
	TabNext  key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "monter")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "descendre")),
	Top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "début")),
	Bottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "fin")),
	PageUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("C-u", "page up")),
	PageDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("C-d", "page dn")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sélectionner")),
	Shell:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shell")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "retour")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filtre")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Sort:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tri")),
	Previous: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "logs précédents")),
	Wrap:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wrap")),
	Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copier nom")),
	Tab1:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "projects")),
	Tab2:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "pods")),
	TabNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "vue suivante")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quitter")),
}
