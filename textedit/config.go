package textedit

import (
	"time"

	"github.com/iw2rmb/foxchat/metrics"
	"github.com/iw2rmb/foxchat/panel"
)

// Metrics measures rendered string widths in host units.
type Metrics interface {
	Width(s string) int
}

// Clipboard provides clipboard integration.
//
// Errors must not crash the UI; read failures make Paste a no-op and write
// failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

const defaultBlinkInterval = 500 * time.Millisecond

// Config configures an Engine.
type Config struct {
	Panel panel.Config

	// Metrics defaults to metrics.Cells.
	Metrics Metrics
	// Clipboard may be nil; Paste and Copy are then no-ops.
	Clipboard Clipboard
	KeyMap    KeyMap

	// Tag is applied to every buffer line handed to the panel.
	Tag panel.Tag

	// CaretWidth is reserved at the end of each line so a caret after the last
	// grapheme stays inside the viewport.
	CaretWidth int

	// BlinkInterval is the caret half-period (default 500ms).
	BlinkInterval time.Duration

	// HistoryLimit caps the undo stack (default 100, negative disables undo).
	HistoryLimit int

	OnChange func(ChangeEvent)
}

func (c Config) normalized() Config {
	if c.Metrics == nil {
		c.Metrics = metrics.Cells{}
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.CaretWidth < 0 {
		c.CaretWidth = 0
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = defaultHistoryLimit
	}
	if c.BlinkInterval <= 0 {
		c.BlinkInterval = defaultBlinkInterval
	}
	return c
}
