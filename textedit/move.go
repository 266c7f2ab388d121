package textedit

import "github.com/iw2rmb/foxchat/buffer"

type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
	DirWordLeft
	DirWordRight
)

// Move moves the cursor and scrolls it into view.
//
// Left and Right wrap to the neighbouring line at line boundaries. Up and Down
// keep the column, clamped to the target line. Word moves skip whitespace and
// then one run of non-whitespace inside the paragraph, and continue into the
// neighbouring paragraph at its edges.
func (e *Engine) Move(d Dir) {
	next := e.clampPos(e.moveCursor(e.cursor, d))
	if next == e.cursor {
		e.panel.EnsureLineVisible(e.cursor.Line)
		return
	}
	e.cursor = next
	e.commit()
}

func (e *Engine) moveCursor(p Pos, d Dir) Pos {
	lastLine := len(e.lines) - 1

	switch d {
	case DirLeft:
		if p.Col > 0 {
			return Pos{Line: p.Line, Col: p.Col - 1}
		}
		if p.Line > 0 {
			return Pos{Line: p.Line - 1, Col: e.lineLen(p.Line - 1)}
		}
	case DirRight:
		if p.Col < e.lineLen(p.Line) {
			return Pos{Line: p.Line, Col: p.Col + 1}
		}
		if p.Line < lastLine {
			return Pos{Line: p.Line + 1, Col: 0}
		}
	case DirUp:
		if p.Line > 0 {
			return Pos{Line: p.Line - 1, Col: minInt(p.Col, e.lineLen(p.Line-1))}
		}
	case DirDown:
		if p.Line < lastLine {
			return Pos{Line: p.Line + 1, Col: minInt(p.Col, e.lineLen(p.Line+1))}
		}
	case DirHome:
		return Pos{Line: p.Line, Col: 0}
	case DirEnd:
		return Pos{Line: p.Line, Col: e.lineLen(p.Line)}
	case DirWordLeft:
		return e.moveWord(p, false)
	case DirWordRight:
		return e.moveWord(p, true)
	}
	return p
}

func (e *Engine) moveWord(p Pos, forward bool) Pos {
	first, last, off := e.paragraphOffset(p)
	row := e.rowOf(first)

	if forward && off >= e.buf.LineLen(row) {
		if last < len(e.lines)-1 {
			return Pos{Line: last + 1, Col: 0}
		}
		return p
	}
	if !forward && off == 0 {
		if first > 0 {
			return Pos{Line: first - 1, Col: e.lineLen(first - 1)}
		}
		return p
	}

	dir := buffer.DirLeft
	if forward {
		dir = buffer.DirRight
	}
	e.buf.SetCursor(buffer.Pos{Row: row, Col: off})
	e.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: dir})
	return e.posAtOffset(first, last, e.buf.Cursor().Col)
}

// posAtOffset maps a paragraph offset back onto the buffer lines
// first..last.
func (e *Engine) posAtOffset(first, last, off int) Pos {
	segs := make([]segment, 0, last-first+1)
	for i := first; i <= last; i++ {
		seg := segment{text: e.lines[i].text}
		if i > first {
			seg.sep = e.lines[i].sep
		}
		segs = append(segs, seg)
	}
	idx, col := locate(segs, off)
	return Pos{Line: first + idx, Col: col}
}
