package panel

import "image"

// Panel is a viewport over an ordered sequence of lines.
//
// The zero value is not usable; construct with New.
type Panel struct {
	cfg Config

	viewport image.Rectangle
	lines    []Line

	// top is the index of the first visible line.
	top int

	dragging   bool
	dragOffset int
}

func New(cfg Config) *Panel {
	return &Panel{cfg: cfg.normalized()}
}

func (p *Panel) Config() Config { return p.cfg }

// SetViewport updates the panel geometry and re-clamps the scroll offset.
func (p *Panel) SetViewport(r image.Rectangle) {
	p.viewport = r.Canon()
	p.clampTop()
}

func (p *Panel) Viewport() image.Rectangle { return p.viewport }

// InnerWidth is the drawable text width inside the margins (at least 1).
func (p *Panel) InnerWidth() int {
	return maxInt(1, p.viewport.Dx()-2*p.cfg.Margin)
}

// SetLines replaces the content and re-clamps the scroll offset.
func (p *Panel) SetLines(lines []Line) {
	p.lines = append(p.lines[:0:0], lines...)
	p.clampTop()
}

// AppendLines extends the content and re-clamps the scroll offset.
func (p *Panel) AppendLines(lines ...Line) {
	p.lines = append(p.lines, lines...)
	p.clampTop()
}

// Lines returns a copy of the current content.
func (p *Panel) Lines() []Line {
	return append([]Line(nil), p.lines...)
}

func (p *Panel) Len() int { return len(p.lines) }

// VisibleCount is the number of lines that fit the viewport, never below 1.
func (p *Panel) VisibleCount() int {
	h := p.viewport.Dy() - 2*p.cfg.Margin
	return maxInt(1, h/p.cfg.LineHeight)
}

// MaxOffset is the largest valid scroll offset.
func (p *Panel) MaxOffset() int {
	return maxInt(0, len(p.lines)-p.VisibleCount())
}

// ScrollTop returns the index of the first visible line.
func (p *Panel) ScrollTop() int { return p.top }

func (p *Panel) SetScrollTop(top int) {
	p.top = top
	p.clampTop()
}

// ScrollBy moves the window by deltaY lines. Positive deltas reveal earlier
// lines.
func (p *Panel) ScrollBy(deltaY int) {
	p.top -= deltaY
	p.clampTop()
}

func (p *Panel) ScrollToBottom() {
	p.top = p.MaxOffset()
}

// EnsureLineVisible scrolls the minimum amount needed for line index to be
// inside [ScrollTop, ScrollTop+VisibleCount).
func (p *Panel) EnsureLineVisible(index int) {
	visible := p.VisibleCount()
	if len(p.lines) <= visible {
		p.top = 0
		return
	}
	if index < p.top {
		p.top = index
	} else if index >= p.top+visible {
		p.top = index - visible + 1
	}
	p.clampTop()
}

// Dragging reports whether the scrollbar handle is being dragged.
func (p *Panel) Dragging() bool { return p.dragging }

func (p *Panel) clampTop() {
	p.top = clampInt(p.top, 0, p.MaxOffset())
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
