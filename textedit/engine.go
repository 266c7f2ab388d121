package textedit

import (
	"image"
	"time"

	"github.com/iw2rmb/foxchat/buffer"
	"github.com/iw2rmb/foxchat/panel"
)

// Engine is a multi-line text input with word wrapping.
//
// The buffer always holds at least one line and the cursor is always a valid
// position in it. The zero value is not usable; construct with New.
type Engine struct {
	cfg   Config
	panel *panel.Panel

	// buf holds the logical rows; lines is their wrapped form.
	buf    *buffer.Buffer
	lines  []line
	cursor Pos

	// width is the wrap width the current lines were laid out for.
	width int

	active  bool
	blinkOn bool
	elapsed time.Duration

	version uint64
}

func New(cfg Config) *Engine {
	cfg = cfg.normalized()
	e := &Engine{
		cfg:     cfg,
		panel:   panel.New(cfg.Panel),
		buf:     buffer.New("", buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		lines:   []line{{}},
		blinkOn: true,
	}
	e.width = e.wrapWidth()
	e.syncPanel()
	return e
}

// Panel exposes the embedded panel for geometry queries and event routing.
func (e *Engine) Panel() *panel.Panel { return e.panel }

func (e *Engine) Version() uint64 { return e.version }

func (e *Engine) Cursor() Pos { return e.cursor }

// Lines returns the wrapped lines at the current width.
func (e *Engine) Lines() []string {
	out := make([]string, len(e.lines))
	for i, ln := range e.lines {
		out[i] = ln.text
	}
	return out
}

// Text returns the logical content: buffer rows joined by "\n". Soft wraps
// are not part of it, so every wrapped line break reads back as the
// whitespace the wrap removed.
func (e *Engine) Text() string { return e.buf.Text() }

// SetText replaces the content, clears the undo history and moves the cursor
// to the end.
func (e *Engine) SetText(s string) {
	e.reflowEdit(e.buf.SetText(sanitizeInput(s)))
	e.commit()
}

// SetCursor moves the cursor to p, clamped to the buffer.
func (e *Engine) SetCursor(p Pos) {
	p = e.clampPos(p)
	if p == e.cursor {
		return
	}
	e.cursor = p
	e.commit()
}

// SetViewport updates the panel geometry. A change of the wrap width reflows
// the whole buffer.
func (e *Engine) SetViewport(r image.Rectangle) {
	e.panel.SetViewport(r)
	w := e.wrapWidth()
	if w == e.width {
		return
	}
	e.width = w

	prev := e.cursor
	e.reflowAll()
	e.syncPanel()
	e.panel.EnsureLineVisible(e.cursor.Line)
	if e.cursor != prev {
		e.version++
		e.emitChange()
	}
}

func (e *Engine) SetActive(active bool) {
	if active && !e.active {
		e.resetBlink()
	}
	e.active = active
}

func (e *Engine) Active() bool { return e.active }

// Tick advances the caret blink by dt.
func (e *Engine) Tick(dt time.Duration) {
	e.elapsed += dt
	if e.elapsed >= e.cfg.BlinkInterval {
		e.blinkOn = !e.blinkOn
		e.elapsed = 0
	}
}

// CursorVisible reports whether the caret is drawn this frame.
func (e *Engine) CursorVisible() bool { return e.active && e.blinkOn }

// View renders the buffer through the panel, with the caret when visible.
func (e *Engine) View() string {
	opts := panel.RenderOptions{}
	if e.CursorVisible() {
		opts.ShowCaret = true
		opts.Caret = panel.Caret{Line: e.cursor.Line, Col: e.cursor.Col}
	}
	return e.panel.Render(opts)
}

func (e *Engine) wrapWidth() int {
	return maxInt(1, e.panel.InnerWidth()-e.cfg.CaretWidth)
}

func (e *Engine) reflowAll() {
	e.layoutAll(e.bufferPos(e.cursor))
}

func (e *Engine) syncPanel() {
	out := make([]panel.Line, len(e.lines))
	for i, ln := range e.lines {
		out[i] = panel.Line{Text: ln.text, Tag: e.cfg.Tag}
	}
	e.panel.SetLines(out)
}

// commit publishes an effective change: version bump, panel mirror, cursor
// visibility and the change callback.
func (e *Engine) commit() {
	e.version++
	e.syncPanel()
	e.panel.EnsureLineVisible(e.cursor.Line)
	e.resetBlink()
	e.emitChange()
}

func (e *Engine) resetBlink() {
	e.blinkOn = true
	e.elapsed = 0
}
