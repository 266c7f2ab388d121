package panel

// Config configures a Panel. Zero values select terminal defaults.
type Config struct {
	// LineHeight is the vertical advance of one line (default 1).
	LineHeight int
	// Margin is the inner padding on every side of the viewport, and the gap
	// between the viewport and the scrollbar (default 0).
	Margin int
	// ScrollbarWidth is the width of the scrollbar track (default 1).
	ScrollbarWidth int
	// MinHandle is the minimum scrollbar handle height (default 1).
	MinHandle int
	// WheelStep is the number of lines one wheel notch scrolls (default 1).
	WheelStep int

	Style Style
}

func (c Config) normalized() Config {
	if c.LineHeight <= 0 {
		c.LineHeight = 1
	}
	if c.Margin < 0 {
		c.Margin = 0
	}
	if c.ScrollbarWidth <= 0 {
		c.ScrollbarWidth = 1
	}
	if c.MinHandle <= 0 {
		c.MinHandle = 1
	}
	if c.WheelStep <= 0 {
		c.WheelStep = 1
	}
	if c.Style.TrackGlyph == "" {
		c.Style.TrackGlyph = "│"
	}
	if c.Style.HandleGlyph == "" {
		c.Style.HandleGlyph = "█"
	}
	return c
}
