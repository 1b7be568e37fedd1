package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	Add          key.Binding
	Edit         key.Binding
	Delete       key.Binding
	ChangeStatus key.Binding
	CycleFilter  key.Binding
	Reload       key.Binding
	DismissError key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		ChangeStatus: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		CycleFilter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		DismissError: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
		Confirm:      key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter/y", "confirm")),
		Cancel:       key.NewBinding(key.WithKeys("esc", "n"), key.WithHelp("esc/n", "cancel")),
		NextField:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
