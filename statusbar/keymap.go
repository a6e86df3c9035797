package statusbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the status bar key bindings.
type KeyMap struct {
	Next, Prev key.Binding
	Jump       key.Binding
	Toggle     key.Binding
	Quit       key.Binding

	Confirm, Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("right", "l", " ", "pgdown"), key.WithHelp("→", "next page")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←", "previous page")),
		Jump:   key.NewBinding(key.WithKeys("g", "ctrl+g"), key.WithHelp("g", "jump to line")),
		Toggle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop reading")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}
