package panel

import "github.com/charmbracelet/lipgloss"

// Tag selects the style of a Line.
type Tag string

// Line is one unit of displayable text.
type Line struct {
	Text string
	Tag  Tag
}

// Style controls the panel's rendering.
type Style struct {
	// Text is used for lines whose Tag has no entry in Tags.
	Text lipgloss.Style
	Tags map[Tag]lipgloss.Style

	Caret  lipgloss.Style
	Track  lipgloss.Style
	Handle lipgloss.Style

	TrackGlyph  string
	HandleGlyph string
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Caret:       lipgloss.NewStyle().Reverse(true),
		Track:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Handle:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TrackGlyph:  "│",
		HandleGlyph: "█",
	}
}

func (s Style) forTag(t Tag) lipgloss.Style {
	if st, ok := s.Tags[t]; ok {
		return st
	}
	return s.Text
}
