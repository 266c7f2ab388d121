package textedit

import (
	"image"

	graphemeutil "github.com/iw2rmb/foxchat/internal/grapheme"
)

// hitTest maps host coordinates to a buffer position. ok is false when the
// point is outside the viewport.
//
// Rows below the last line map to the end of the last line; a click on the
// right half of a glyph maps to the column after it.
func (e *Engine) hitTest(x, y int) (Pos, bool) {
	vp := e.panel.Viewport()
	if !image.Pt(x, y).In(vp) {
		return Pos{}, false
	}
	pcfg := e.panel.Config()

	row := maxInt(0, (y-vp.Min.Y-pcfg.Margin)/pcfg.LineHeight)
	idx := e.panel.ScrollTop() + row
	if idx >= len(e.lines) {
		last := len(e.lines) - 1
		return Pos{Line: last, Col: e.lineLen(last)}, true
	}

	dx := x - vp.Min.X - pcfg.Margin
	acc := 0
	for i, g := range graphemeutil.Split(e.lines[idx].text) {
		w := e.cfg.Metrics.Width(g)
		if dx < acc+(w+1)/2 {
			return Pos{Line: idx, Col: i}, true
		}
		acc += w
	}
	return Pos{Line: idx, Col: e.lineLen(idx)}, true
}
