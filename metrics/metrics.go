// Package metrics provides string width measurement for the text-edit engine
// and chat log wrapping.
//
// Widths are in host units: terminal cells for Cells, pixels for Face.
package metrics

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"

	graphemeutil "github.com/iw2rmb/foxchat/internal/grapheme"
)

// Cells measures strings in terminal cells.
//
// Tabs count as one cell; the panel renders them as a single space.
type Cells struct{}

func (Cells) Width(s string) int {
	w := 0
	for _, gr := range graphemeutil.Split(s) {
		w += clusterCells(gr)
	}
	return w
}

func clusterCells(gr string) int {
	if gr == "\t" {
		return 1
	}
	w := runewidth.StringWidth(gr)
	if w <= 0 {
		w = uniseg.StringWidth(gr)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Face measures strings with a font face, rounded to whole pixels.
type Face struct {
	Face font.Face
}

func (f Face) Width(s string) int {
	if f.Face == nil || s == "" {
		return 0
	}
	return font.MeasureString(f.Face, s).Round()
}

// Fixed gives every grapheme cluster the same advance.
type Fixed int

func (f Fixed) Width(s string) int {
	return int(f) * graphemeutil.Count(s)
}
