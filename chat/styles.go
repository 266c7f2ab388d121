package chat

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/foxchat/panel"
)

const (
	TagUser panel.Tag = "user"
	TagBot  panel.Tag = "bot"
	TagText panel.Tag = "input"
)

// Styles controls the host's rendering.
type Styles struct {
	Box       lipgloss.Style
	ActiveBox lipgloss.Style

	PlayerTitle lipgloss.Style
	GameTitle   lipgloss.Style

	// Log styles the chat log lines, keyed by sender tag.
	Log panel.Style
	// Input styles the text input.
	Input panel.Style

	SendButton       lipgloss.Style
	SendButtonActive lipgloss.Style

	HelpBox lipgloss.Style
}

func DefaultStyles() Styles {
	log := panel.DefaultStyle()
	log.Tags = map[panel.Tag]lipgloss.Style{
		TagUser: lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd7ff")),
		TagBot:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaf5f")),
	}

	input := panel.DefaultStyle()
	input.Text = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#646464"))

	return Styles{
		Box:       box,
		ActiveBox: box.BorderForeground(lipgloss.Color("#ffff00")),

		PlayerTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00c800")),
		GameTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c80000")),

		Log:   log,
		Input: input,

		SendButton:       lipgloss.NewStyle().Foreground(lipgloss.Color("#c8c8c8")).Background(lipgloss.Color("#3c3c3c")),
		SendButtonActive: lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#5fd7ff")),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffff00")).
			Padding(0, 1),
	}
}
