package textedit

import (
	"sort"
	"strings"

	graphemeutil "github.com/iw2rmb/foxchat/internal/grapheme"
	"github.com/iw2rmb/foxchat/metrics"
)

// segment is one wrapped piece of a paragraph. sep is the whitespace the wrap
// removed between the previous segment and this one.
type segment struct {
	text string
	sep  string
}

// Wrap breaks text into lines no wider than width as measured by m.
//
// Explicit newlines always break. Within a paragraph the break goes at the
// nearest whitespace before the overflow; a word longer than the width is cut
// mid-word. Whitespace at each break is dropped. Every line holds at least one
// grapheme of the paragraph when the paragraph is non-empty, so a width smaller
// than one glyph still terminates.
func Wrap(text string, width int, m Metrics) []string {
	if m == nil {
		m = metrics.Cells{}
	}
	var out []string
	for _, para := range strings.Split(normalizeNewlines(text), "\n") {
		for _, seg := range wrapParagraph(para, width, m) {
			out = append(out, seg.text)
		}
	}
	return out
}

func wrapParagraph(text string, width int, m Metrics) []segment {
	if width < 1 {
		width = 1
	}

	var segs []segment
	rest, sep := text, ""
	for m.Width(rest) > width {
		gs := graphemeutil.Split(rest)
		at := breakAt(gs, fitCount(gs, width, m))

		left, trail := graphemeutil.TrimRight(strings.Join(gs[:at], ""))
		lead, right := graphemeutil.TrimLeft(strings.Join(gs[at:], ""))
		segs = append(segs, segment{text: left, sep: sep})

		rest, sep = right, trail+lead
	}
	return append(segs, segment{text: rest, sep: sep})
}

// fitCount returns the length of the longest prefix of gs that fits width,
// never less than 1.
func fitCount(gs []string, width int, m Metrics) int {
	n := sort.Search(len(gs), func(k int) bool {
		return m.Width(strings.Join(gs[:k+1], "")) > width
	})
	if n < 1 {
		return 1
	}
	return n
}

// breakAt picks the split index for a line whose first n graphemes fit.
// Breaks go before a whitespace grapheme at or before n that has text on its
// left; without one the line is cut at n.
func breakAt(gs []string, n int) int {
	first := -1
	for i, g := range gs {
		if !graphemeutil.IsSpace(g) {
			first = i
			break
		}
	}
	if first < 0 {
		return n
	}
	for i := minInt(n, len(gs)-1); i > first && i >= 1; i-- {
		if graphemeutil.IsSpace(gs[i]) {
			return i
		}
	}
	return n
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
