package textedit

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HandleKey applies a key press. It returns the submitted text and true when
// msg triggered a submit. Keys are ignored while the engine is inactive.
func (e *Engine) HandleKey(msg tea.KeyMsg) (string, bool) {
	if !e.active {
		return "", false
	}

	// Bracketed paste always inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		e.InsertText(string(msg.Runes))
		return "", false
	}

	km := e.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Submit):
		return e.Submit(), true

	case key.Matches(msg, km.Left):
		e.Move(DirLeft)
	case key.Matches(msg, km.Right):
		e.Move(DirRight)
	case key.Matches(msg, km.Up):
		e.Move(DirUp)
	case key.Matches(msg, km.Down):
		e.Move(DirDown)
	case key.Matches(msg, km.WordLeft):
		e.Move(DirWordLeft)
	case key.Matches(msg, km.WordRight):
		e.Move(DirWordRight)
	case key.Matches(msg, km.Home):
		e.Move(DirHome)
	case key.Matches(msg, km.End):
		e.Move(DirEnd)

	case key.Matches(msg, km.Backspace):
		e.DeleteBackward()
	case key.Matches(msg, km.Delete):
		e.DeleteForward()
	case key.Matches(msg, km.Newline):
		e.InsertNewline()

	case key.Matches(msg, km.Copy):
		e.Copy()
	case key.Matches(msg, km.Paste):
		e.Paste()
	case key.Matches(msg, km.Undo):
		e.Undo()
	case key.Matches(msg, km.Redo):
		e.Redo()

	default:
		if msg.Type == tea.KeySpace {
			e.InsertText(" ")
			break
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			e.InsertText(string(msg.Runes))
		}
	}
	return "", false
}

// HandleMouse applies a pointer event and reports whether it was consumed.
//
// Wheel and scrollbar drag events reach the panel whether or not the engine
// is active. A left press on the text moves the cursor to the clicked
// position.
func (e *Engine) HandleMouse(msg tea.MouseMsg) bool {
	if e.panel.WantsEvent(msg) {
		return e.panel.HandleMouse(msg)
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	p, ok := e.hitTest(msg.X, msg.Y)
	if !ok {
		return false
	}
	e.SetCursor(p)
	return true
}
