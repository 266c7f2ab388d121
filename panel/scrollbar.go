package panel

import (
	"image"
	"math"
)

// Scrollbar returns the track and handle rectangles in host coordinates.
//
// The track sits Margin units right of the viewport and spans its height.
// handle is empty when all lines fit.
func (p *Panel) Scrollbar() (bar, handle image.Rectangle) {
	vp := p.viewport
	x := vp.Max.X + p.cfg.Margin
	bar = image.Rect(x, vp.Min.Y, x+p.cfg.ScrollbarWidth, vp.Max.Y)

	total := len(p.lines)
	visible := p.VisibleCount()
	barH := bar.Dy()
	if total <= visible || barH <= 0 {
		return bar, image.Rectangle{}
	}

	h := int(math.Round(float64(barH) * float64(visible) / float64(total)))
	h = clampInt(maxInt(h, p.cfg.MinHandle), 1, barH)

	y := bar.Min.Y
	if maxOff := p.MaxOffset(); maxOff > 0 {
		y += int(math.Round(float64(p.top) / float64(maxOff) * float64(barH-h)))
	}
	return bar, image.Rect(bar.Min.X, y, bar.Max.X, y+h)
}

// dragTo maps a pointer y coordinate to a scroll offset while dragging.
func (p *Panel) dragTo(pointerY int) {
	bar, handle := p.Scrollbar()
	if handle.Empty() {
		p.top = 0
		return
	}
	travel := bar.Dy() - handle.Dy()
	if travel <= 0 {
		p.top = 0
		return
	}
	y := clampInt(pointerY-bar.Min.Y-p.dragOffset, 0, travel)
	p.top = int(math.Round(float64(y) / float64(travel) * float64(p.MaxOffset())))
	p.clampTop()
}
