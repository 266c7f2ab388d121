package chat

import "image"

// Area is a focusable window region.
type Area int

const (
	AreaNone Area = iota
	AreaChat
	AreaInput
	AreaPlayer
	AreaGame
)

func (a Area) String() string {
	switch a {
	case AreaChat:
		return "chat"
	case AreaInput:
		return "input"
	case AreaPlayer:
		return "player"
	case AreaGame:
		return "game"
	default:
		return "none"
	}
}

// focusOrder is the Tab cycle.
var focusOrder = []Area{AreaChat, AreaInput, AreaPlayer, AreaGame}

// Focus tracks the active area. Only one area is active at a time.
type Focus struct {
	current Area
}

func NewFocus(start Area) *Focus { return &Focus{current: start} }

func (f *Focus) Current() Area { return f.current }

// Set activates a. AreaNone is ignored.
func (f *Focus) Set(a Area) {
	if a == AreaNone {
		return
	}
	f.current = a
}

// Next advances the Tab cycle and returns the new area.
func (f *Focus) Next() Area { return f.step(1) }

// Prev steps the Tab cycle backwards and returns the new area.
func (f *Focus) Prev() Area { return f.step(-1) }

func (f *Focus) step(d int) Area {
	idx := 0
	for i, a := range focusOrder {
		if a == f.current {
			idx = i
			break
		}
	}
	n := len(focusOrder)
	f.current = focusOrder[((idx+d)%n+n)%n]
	return f.current
}

// AreaAt returns the area under pt. Boxes are tested in Tab order.
func (r Regions) AreaAt(pt image.Point) Area {
	switch {
	case pt.In(r.Chat):
		return AreaChat
	case pt.In(r.Input):
		return AreaInput
	case pt.In(r.Player):
		return AreaPlayer
	case pt.In(r.Game):
		return AreaGame
	}
	return AreaNone
}
