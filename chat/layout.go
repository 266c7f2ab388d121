package chat

import (
	"image"
	"math"
)

// minBoxRows keeps a bordered box tall enough for one line of content.
const minBoxRows = 3

// scrollbarCols is the scrollbar width used by the terminal host.
const scrollbarCols = 1

// Layout computes the window regions from the terminal size.
type Layout struct {
	// PlayerInfoRatio is the share of the height given to the player box.
	PlayerInfoRatio float64
	// ChatWidthRatio is the share of the width given to the chat log.
	ChatWidthRatio float64
	// InputRatio is the share of the height given to the input box.
	InputRatio float64
	// SendButtonWidth is the width of the send button in cells.
	SendButtonWidth int
	// HideStatusBar gives the last row, otherwise used by the key help line,
	// back to the input box.
	HideStatusBar bool
}

func DefaultLayout() Layout {
	return Layout{
		PlayerInfoRatio: 0.10,
		ChatWidthRatio:  0.70,
		InputRatio:      0.12,
		SendButtonWidth: len(sendLabel),
	}
}

func (l Layout) normalized() Layout {
	d := DefaultLayout()
	if l.PlayerInfoRatio <= 0 || l.PlayerInfoRatio >= 1 {
		l.PlayerInfoRatio = d.PlayerInfoRatio
	}
	if l.ChatWidthRatio <= 0 || l.ChatWidthRatio >= 1 {
		l.ChatWidthRatio = d.ChatWidthRatio
	}
	if l.InputRatio <= 0 || l.InputRatio >= 1 {
		l.InputRatio = d.InputRatio
	}
	if l.SendButtonWidth <= 0 {
		l.SendButtonWidth = d.SendButtonWidth
	}
	return l
}

// Regions are the outer rectangles of every box, in cells. Rectangles may be
// empty when the terminal is too small.
type Regions struct {
	Player image.Rectangle
	Chat   image.Rectangle
	Game   image.Rectangle
	Input  image.Rectangle
	// Send lies inside Input's border.
	Send   image.Rectangle
	Status image.Rectangle
}

// Compute splits a width x height terminal. Rows are assigned top to bottom
// (player, chat and game side by side, input, status) and always add up to
// height.
func (l Layout) Compute(width, height int) Regions {
	l = l.normalized()
	width, height = max(0, width), max(0, height)

	statusH := 0
	if !l.HideStatusBar && height > 3*minBoxRows {
		statusH = 1
	}
	rest := height - statusH

	playerH := min(rest, max(minBoxRows, ratio(height, l.PlayerInfoRatio)))
	rest -= playerH
	inputH := min(rest, max(minBoxRows, ratio(height, l.InputRatio)))
	rest -= inputH
	mainH := rest

	chatW := min(width, ratio(width, l.ChatWidthRatio))

	var r Regions
	y := 0
	r.Player = image.Rect(0, y, width, y+playerH)
	y += playerH
	r.Chat = image.Rect(0, y, chatW, y+mainH)
	r.Game = image.Rect(chatW, y, width, y+mainH)
	y += mainH
	r.Input = image.Rect(0, y, width, y+inputH)
	y += inputH
	r.Status = image.Rect(0, y, width, y+statusH)

	in := inner(r.Input)
	if in.Dx() >= l.SendButtonWidth+4 && in.Dy() > 0 {
		mid := in.Min.Y + (in.Dy()-1)/2
		r.Send = image.Rect(in.Max.X-l.SendButtonWidth, mid, in.Max.X, mid+1)
	}
	return r
}

// ChatText is the chat log viewport: the chat box content minus the
// scrollbar column.
func (r Regions) ChatText() image.Rectangle {
	in := inner(r.Chat)
	in.Max.X = max(in.Min.X, in.Max.X-scrollbarCols)
	return in
}

// InputText is the text input viewport: the input box content minus the send
// button, a one-cell gap and the scrollbar column.
func (r Regions) InputText() image.Rectangle {
	in := inner(r.Input)
	right := in.Max.X
	if !r.Send.Empty() {
		right = r.Send.Min.X - 1
	}
	in.Max.X = max(in.Min.X, right-scrollbarCols)
	return in
}

// inner strips a one-cell border.
func inner(r image.Rectangle) image.Rectangle {
	if r.Dx() < 2 || r.Dy() < 2 {
		return image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return image.Rect(r.Min.X+1, r.Min.Y+1, r.Max.X-1, r.Max.Y-1)
}

func ratio(n int, f float64) int {
	return int(math.Round(float64(n) * f))
}
