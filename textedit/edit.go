package textedit

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/foxchat/buffer"
)

// InsertText inserts s at the cursor and moves the cursor past it.
//
// Text containing newlines is spliced like a paste: the first line joins the
// text before the cursor, the last line joins the text after it.
func (e *Engine) InsertText(s string) {
	s = sanitizeInput(s)
	if s == "" {
		return
	}
	e.apply(func() (buffer.Edit, bool) { return e.buf.InsertText(s) })
}

// InsertNewline splits the current line at the cursor with a hard break.
func (e *Engine) InsertNewline() {
	e.apply(e.buf.InsertNewline)
}

// DeleteBackward removes the grapheme before the cursor.
//
// At the start of a paragraph it merges the paragraph into the previous one.
// At the start of a wrapped continuation line it removes the last grapheme of
// the whitespace the wrap dropped, or of the previous line when the wrap cut a
// word, and the lines merge on reflow.
func (e *Engine) DeleteBackward() {
	e.apply(e.buf.DeleteBackward)
}

// DeleteForward removes the grapheme after the cursor, merging the next
// paragraph into this one at a paragraph end.
func (e *Engine) DeleteForward() {
	e.apply(e.buf.DeleteForward)
}

// apply runs a buffer mutation at the cursor and re-wraps the rows it
// touched. A mutation that changes nothing still scrolls the cursor into
// view.
func (e *Engine) apply(mutate func() (buffer.Edit, bool)) {
	e.buf.SetCursor(e.bufferPos(e.cursor))
	ed, ok := mutate()
	if !ok {
		e.panel.EnsureLineVisible(e.cursor.Line)
		return
	}
	e.reflowEdit(ed)
	e.commit()
}

// Paste inserts the clipboard text at the cursor. An empty clipboard or a
// failed read leaves the buffer unchanged.
func (e *Engine) Paste() {
	if e.cfg.Clipboard == nil {
		return
	}
	s, err := e.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	e.InsertText(s)
}

// Copy writes Text to the clipboard. Write errors are ignored.
func (e *Engine) Copy() {
	if e.cfg.Clipboard == nil {
		return
	}
	_ = e.cfg.Clipboard.WriteText(e.Text())
}

// Submit returns Text and resets the buffer to a single empty line. The undo
// history is cleared.
func (e *Engine) Submit() string {
	text := e.Text()
	if text == "" {
		return text
	}
	e.reflowEdit(e.buf.SetText(""))
	e.commit()
	return text
}

// sanitizeInput normalizes line endings and drops control characters other
// than newline and tab.
func sanitizeInput(s string) string {
	s = normalizeNewlines(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
