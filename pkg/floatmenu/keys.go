package floatmenu

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the menu's key bindings.
type KeyMap struct {
	// Activate opens the menu while the trigger has focus.
	Activate key.Binding
	Next     key.Binding
	Prev     key.Binding
	Select   key.Binding
	Dismiss  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "open menu"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Select, k.Dismiss}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate},
		{k.Next, k.Prev},
		{k.Select, k.Dismiss},
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Activate.Keys()) == 0 && len(k.Next.Keys()) == 0 &&
		len(k.Prev.Keys()) == 0 && len(k.Select.Keys()) == 0 && len(k.Dismiss.Keys()) == 0
}
