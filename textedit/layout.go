package textedit

import (
	"github.com/iw2rmb/foxchat/buffer"
	graphemeutil "github.com/iw2rmb/foxchat/internal/grapheme"
)

// Pos is a cursor position: a wrapped line index and a grapheme column.
type Pos struct {
	Line int
	Col  int
}

// line is one wrapped line. A soft line continues the buffer row of the line
// before it; sep holds the whitespace the wrap removed at that boundary.
type line struct {
	text string
	soft bool
	sep  string
}

// paragraphAt returns the first and last wrapped line of the row that
// contains line i.
func (e *Engine) paragraphAt(i int) (first, last int) {
	first, last = i, i
	for first > 0 && e.lines[first].soft {
		first--
	}
	for last+1 < len(e.lines) && e.lines[last+1].soft {
		last++
	}
	return first, last
}

// rowOf returns the buffer row that wrapped line i belongs to.
func (e *Engine) rowOf(i int) int {
	row := 0
	for j := 1; j <= i && j < len(e.lines); j++ {
		if !e.lines[j].soft {
			row++
		}
	}
	return row
}

// rowLines returns the first and last wrapped line of buffer row.
func (e *Engine) rowLines(row int) (first, last int) {
	r := -1
	for i, ln := range e.lines {
		if ln.soft {
			continue
		}
		r++
		if r == row {
			return e.paragraphAt(i)
		}
	}
	return e.paragraphAt(len(e.lines) - 1)
}

// paragraphOffset converts p into a grapheme offset inside its row.
func (e *Engine) paragraphOffset(p Pos) (first, last, off int) {
	first, last = e.paragraphAt(p.Line)
	for i := first; i < p.Line; i++ {
		off += graphemeutil.Count(e.lines[i].text)
		off += graphemeutil.Count(e.lines[i+1].sep)
	}
	return first, last, off + p.Col
}

// bufferPos maps a wrapped position onto the buffer.
func (e *Engine) bufferPos(p Pos) buffer.Pos {
	first, _, off := e.paragraphOffset(p)
	return buffer.Pos{Row: e.rowOf(first), Col: off}
}

// reflowEdit re-wraps the rows an edit rewrote and moves the cursor to the
// buffer cursor, which always lies inside them.
func (e *Engine) reflowEdit(ed buffer.Edit) {
	first, _ := e.rowLines(ed.Row)
	_, last := e.rowLines(ed.Row + ed.Old - 1)
	texts := make([]string, ed.New)
	for i := range texts {
		texts[i] = e.buf.Line(ed.Row + i)
	}
	cur := e.buf.Cursor()
	e.replaceParagraphs(first, last, texts, cur.Row-ed.Row, cur.Col)
}

// layoutAll re-wraps every row and places the cursor at cur.
func (e *Engine) layoutAll(cur buffer.Pos) {
	e.replaceParagraphs(0, len(e.lines)-1, e.buf.Lines(), cur.Row, cur.Col)
}

// replaceParagraphs swaps the wrapped lines lines[first..last] for the
// wrapped form of texts and places the cursor at grapheme offset off inside
// texts[cursorPara].
func (e *Engine) replaceParagraphs(first, last int, texts []string, cursorPara, off int) {
	width := e.wrapWidth()

	repl := make([]line, 0, len(texts))
	cursor := Pos{}
	for i, text := range texts {
		segs := wrapParagraph(text, width, e.cfg.Metrics)
		if i == cursorPara {
			idx, col := locate(segs, off)
			cursor = Pos{Line: first + len(repl) + idx, Col: col}
		}
		for j, seg := range segs {
			repl = append(repl, line{text: seg.text, soft: j > 0, sep: seg.sep})
		}
	}

	tail := append([]line(nil), e.lines[last+1:]...)
	e.lines = append(append(e.lines[:first], repl...), tail...)
	e.cursor = cursor
}

// locate maps a paragraph offset onto wrapped segments. An offset at the end
// of a segment's text stays on that segment; offsets inside a removed
// separator move to the start of the next segment.
func locate(segs []segment, off int) (idx, col int) {
	start := 0
	for i, seg := range segs {
		if i > 0 {
			start += graphemeutil.Count(seg.sep)
		}
		n := graphemeutil.Count(seg.text)
		if off <= start+n || i == len(segs)-1 {
			return i, clampInt(off-start, 0, n)
		}
		start += n
	}
	return 0, 0
}

func (e *Engine) lineLen(i int) int {
	return graphemeutil.Count(e.lines[i].text)
}

func (e *Engine) clampPos(p Pos) Pos {
	p.Line = clampInt(p.Line, 0, len(e.lines)-1)
	p.Col = clampInt(p.Col, 0, e.lineLen(p.Line))
	return p
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

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
