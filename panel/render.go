package panel

import (
	"strings"

	"github.com/mattn/go-runewidth"

	graphemeutil "github.com/iw2rmb/foxchat/internal/grapheme"
)

// Caret is a cursor position in line/grapheme-column coordinates.
type Caret struct {
	Line int
	Col  int
}

// RenderOptions carries per-frame overlays. The stored lines are never
// modified by rendering.
type RenderOptions struct {
	ShowCaret bool
	Caret     Caret
}

// View renders the panel without overlays.
func (p *Panel) View() string { return p.Render(RenderOptions{}) }

// Render draws the visible slice of lines followed by the scrollbar.
//
// The result is a block of Viewport().Dx()+Margin+ScrollbarWidth columns by
// Viewport().Dy() rows (never smaller than one cell of content).
func (p *Panel) Render(opts RenderOptions) string {
	width := maxInt(1, p.viewport.Dx())
	height := maxInt(1, p.viewport.Dy())
	m := p.cfg.Margin
	innerW := p.InnerWidth()

	leftPad := m
	if leftPad+innerW > width {
		leftPad = maxInt(0, width-innerW)
	}
	rightPad := maxInt(0, width-leftPad-innerW)

	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range rows {
		rows[i] = blank
	}

	start := clampInt(p.top, 0, p.MaxOffset())
	end := minInt(start+p.VisibleCount(), len(p.lines))
	y := minInt(m, height-1)
	for idx := start; idx < end && y < height; idx++ {
		rows[y] = strings.Repeat(" ", leftPad) + p.renderLine(idx, innerW, opts) + strings.Repeat(" ", rightPad)
		y += p.cfg.LineHeight
	}

	_, handle := p.Scrollbar()
	gap := strings.Repeat(" ", m)
	track := p.cfg.Style.Track.Render(strings.Repeat(p.cfg.Style.TrackGlyph, p.cfg.ScrollbarWidth))
	thumb := p.cfg.Style.Handle.Render(strings.Repeat(p.cfg.Style.HandleGlyph, p.cfg.ScrollbarWidth))
	for r := range rows {
		hostY := p.viewport.Min.Y + r
		if !handle.Empty() && hostY >= handle.Min.Y && hostY < handle.Max.Y {
			rows[r] += gap + thumb
		} else {
			rows[r] += gap + track
		}
	}

	return strings.Join(rows, "\n")
}

func (p *Panel) renderLine(idx, width int, opts RenderOptions) string {
	line := p.lines[idx]
	st := p.cfg.Style.forTag(line.Tag)

	if !opts.ShowCaret || opts.Caret.Line != idx {
		text := runewidth.Truncate(Sanitize(line.Text), width, "")
		return st.Render(runewidth.FillRight(text, width))
	}

	before, after := graphemeutil.SplitAt(line.Text, opts.Caret.Col)
	before, after = clean(before), clean(after)
	at, rest := " ", ""
	if after != "" {
		at, rest = graphemeutil.SplitAt(after, 1)
	}

	used := runewidth.StringWidth(before)
	atW := maxInt(1, runewidth.StringWidth(at))
	if used+atW > width {
		// Caret is clipped; draw the line without it.
		text := runewidth.Truncate(Sanitize(before+after), width, "")
		return st.Render(runewidth.FillRight(text, width))
	}

	rest = runewidth.Truncate(rest, width-used-atW, "")
	fill := width - used - atW - runewidth.StringWidth(rest)

	var sb strings.Builder
	if before != "" {
		sb.WriteString(st.Render(before))
	}
	sb.WriteString(p.cfg.Style.Caret.Render(at))
	if rest != "" || fill > 0 {
		sb.WriteString(st.Render(rest + strings.Repeat(" ", fill)))
	}
	return sb.String()
}
