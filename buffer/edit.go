package buffer

import (
	"strings"

	"github.com/iw2rmb/foxchat/internal/grapheme"
)

// InsertText inserts text at the cursor. Each '\n' in s starts a new row.
func (b *Buffer) InsertText(s string) (Edit, bool) {
	if s == "" {
		return Edit{}, false
	}
	return b.replace(Range{Start: b.cursor, End: b.cursor}, s)
}

// InsertNewline splits the current row at the cursor.
func (b *Buffer) InsertNewline() (Edit, bool) {
	return b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. At the start of a row it joins
// the row onto the previous one.
func (b *Buffer) DeleteBackward() (Edit, bool) {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return Edit{}, false
	}

	if col > 0 {
		return b.replace(Range{
			Start: Pos{Row: row, Col: col - 1},
			End:   Pos{Row: row, Col: col},
		}, "")
	}

	// Join with previous line (delete the newline).
	prevRow := row - 1
	return b.replace(Range{
		Start: Pos{Row: prevRow, Col: len(b.lines[prevRow])},
		End:   Pos{Row: row, Col: 0},
	}, "")
}

// DeleteForward applies delete-key semantics. At the end of a row it joins
// the next row onto it.
func (b *Buffer) DeleteForward() (Edit, bool) {
	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return Edit{}, false
	}

	if col < len(b.lines[row]) {
		return b.replace(Range{
			Start: Pos{Row: row, Col: col},
			End:   Pos{Row: row, Col: col + 1},
		}, "")
	}

	// Join with next line (delete the newline).
	return b.replace(Range{
		Start: Pos{Row: row, Col: col},
		End:   Pos{Row: row + 1, Col: 0},
	}, "")
}

// replace swaps r for text, records the undo snapshot and moves the cursor to
// the end of the inserted text.
func (b *Buffer) replace(r Range, text string) (Edit, bool) {
	prev := b.snapshot()
	nextCursor, ed, changed := b.replaceRange(r, text)
	if !changed {
		return Edit{}, false
	}
	b.cursor = nextCursor
	b.version++
	b.recordUndo(prev)
	return ed, true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, ed Edit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, Edit{}, false
	}
	if textForLinesRange(b.lines, r) == text {
		return b.cursor, Edit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]string(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]string, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)

	b.lines = out
	ed = Edit{Row: startRow, Old: endRow - startRow + 1, New: len(repl)}
	return nextCursor, ed, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
