package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// fitLine truncates or pads s to exactly w cells. ANSI sequences are kept.
func fitLine(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// fitBlock clips or pads s to exactly w x h cells.
func fitBlock(s string, w, h int) string {
	if h <= 0 {
		return ""
	}
	rows := strings.Split(s, "\n")
	out := make([]string, h)
	for i := range out {
		if i < len(rows) {
			out[i] = fitLine(rows[i], w)
		} else {
			out[i] = strings.Repeat(" ", max(0, w))
		}
	}
	return strings.Join(out, "\n")
}

// box draws content inside a bordered w x h block. Blocks without room for
// a border and one row of content are left blank.
func box(st lipgloss.Style, content string, w, h int) string {
	if w < 2 || h < minBoxRows {
		return fitBlock("", w, h)
	}
	return st.Render(fitBlock(content, w-2, h-2))
}
