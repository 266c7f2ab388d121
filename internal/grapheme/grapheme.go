package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// SplitAt cuts text into [0, col) and [col, end). col is clamped.
func SplitAt(text string, col int) (string, string) {
	if col <= 0 {
		return "", text
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == col {
			from, _ := g.Positions()
			return text[:from], text[from:]
		}
		idx++
	}
	return text, ""
}

// Join concatenates grapheme clusters back into a string.
func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// TrimRight strips trailing whitespace clusters and returns the stripped run.
func TrimRight(text string) (kept, trimmed string) {
	kept = strings.TrimRightFunc(text, unicode.IsSpace)
	return kept, text[len(kept):]
}

// TrimLeft strips leading whitespace clusters and returns the stripped run.
func TrimLeft(text string) (trimmed, kept string) {
	kept = strings.TrimLeftFunc(text, unicode.IsSpace)
	return text[:len(text)-len(kept)], kept
}
