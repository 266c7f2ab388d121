package buffer

import (
	"strings"

	"github.com/iw2rmb/foxchat/internal/grapheme"
)

const defaultHistoryLimit = 1000

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

// Buffer is the pure document state: rows and cursor.
type Buffer struct {
	lines   [][]string
	version uint64

	cursor Pos

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = defaultHistoryLimit
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Lines returns every row as a string.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = grapheme.Join(line)
	}
	return out
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns row as a string, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineLen returns the grapheme count of row.
func (b *Buffer) LineLen(row int) int { return b.lineLen(row) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// SetText replaces the whole document, moves the cursor to its end and
// clears the undo history.
func (b *Buffer) SetText(text string) Edit {
	old := len(b.lines)
	b.lines = splitLines(text)
	last := len(b.lines) - 1
	b.cursor = Pos{Row: last, Col: len(b.lines[last])}
	b.hist = historyState{}
	b.version++
	return Edit{Row: 0, Old: old, New: len(b.lines)}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
