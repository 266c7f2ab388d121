package panel

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"
)

// WantsEvent reports whether HandleMouse would act on msg.
//
// Owners use it to route pointer events without knowing the scrollbar
// geometry: wheel over the viewport or track (or while dragging), left press
// on the handle, and motion or release while a drag is in progress.
func (p *Panel) WantsEvent(msg tea.MouseMsg) bool {
	pt := image.Pt(msg.X, msg.Y)
	if isVerticalWheel(msg) {
		bar, _ := p.Scrollbar()
		return p.dragging || pt.In(p.viewport) || pt.In(bar)
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		_, handle := p.Scrollbar()
		return pt.In(handle)
	case tea.MouseActionMotion, tea.MouseActionRelease:
		return p.dragging
	}
	return false
}

// HandleMouse applies wheel scrolling and handle dragging. It reports whether
// the event was consumed.
//
// Any release ends a drag: terminals do not always report which button was
// released.
func (p *Panel) HandleMouse(msg tea.MouseMsg) bool {
	if isVerticalWheel(msg) {
		if msg.Button == tea.MouseButtonWheelUp {
			p.ScrollBy(p.cfg.WheelStep)
		} else {
			p.ScrollBy(-p.cfg.WheelStep)
		}
		return true
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		_, handle := p.Scrollbar()
		if !image.Pt(msg.X, msg.Y).In(handle) {
			return false
		}
		p.dragging = true
		p.dragOffset = msg.Y - handle.Min.Y
		return true

	case tea.MouseActionRelease:
		was := p.dragging
		p.dragging = false
		p.dragOffset = 0
		return was

	case tea.MouseActionMotion:
		if !p.dragging {
			return false
		}
		p.dragTo(msg.Y)
		return true
	}
	return false
}

func isVerticalWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown)
}
