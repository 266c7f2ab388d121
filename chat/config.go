package chat

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/foxchat/metrics"
	"github.com/iw2rmb/foxchat/textedit"
)

const (
	defaultUserName      = "User"
	defaultBotName       = "Bot"
	defaultFrameInterval = 50 * time.Millisecond
	defaultReplyTimeout  = 5 * time.Second
)

// Config configures a Model. Zero values select defaults.
type Config struct {
	UserName string
	BotName  string

	// Responder answers submitted messages (default Static{}).
	Responder Responder
	// Clipboard backs copy and paste in the input; nil disables both.
	Clipboard textedit.Clipboard
	// Metrics measures text in cells (default metrics.Cells).
	Metrics textedit.Metrics

	Logger *slog.Logger

	Layout Layout
	// Styles defaults to DefaultStyles().
	Styles *Styles
	KeyMap *KeyMap

	// FrameInterval is the caret animation tick.
	FrameInterval time.Duration
	// ReplyTimeout bounds a single Respond call.
	ReplyTimeout time.Duration

	PlayerInfo string
	GameInfo   string
}

func (c Config) normalized() Config {
	if c.UserName == "" {
		c.UserName = defaultUserName
	}
	if c.BotName == "" {
		c.BotName = defaultBotName
	}
	if c.Responder == nil {
		c.Responder = Static{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Cells{}
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	c.Layout = c.Layout.normalized()
	if c.Styles == nil {
		st := DefaultStyles()
		c.Styles = &st
	}
	if c.KeyMap == nil {
		km := DefaultKeyMap()
		c.KeyMap = &km
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = defaultFrameInterval
	}
	if c.ReplyTimeout <= 0 {
		c.ReplyTimeout = defaultReplyTimeout
	}
	if c.PlayerInfo == "" {
		c.PlayerInfo = "HP 100/100  Level 1"
	}
	if c.GameInfo == "" {
		c.GameInfo = "Waiting for the game to start."
	}
	return c
}
