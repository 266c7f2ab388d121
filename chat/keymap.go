package chat

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/foxchat/textedit"
)

// KeyMap defines the host key bindings. Input holds the bindings of the text
// input; they only apply while the input area is focused.
type KeyMap struct {
	Quit                 key.Binding
	FocusNext, FocusPrev key.Binding
	Help, CloseHelp      key.Binding

	// Chat log scrolling, active while the chat area is focused.
	ScrollUp, ScrollDown key.Binding
	PageUp, PageDown     key.Binding
	Top, Bottom          key.Binding

	Input textedit.KeyMap
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next area")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous area")),
		// "?" only toggles help outside the input, where it is typed text.
		Help:      key.NewBinding(key.WithKeys("f1", "?"), key.WithHelp("f1/?", "help")),
		CloseHelp: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),

		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "oldest")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "newest")),

		Input: textedit.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Input.Submit, k.FocusNext, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{k.Quit, k.FocusNext, k.FocusPrev, k.Help},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
	}
	return append(groups, k.Input.FullHelp()...)
}
