package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/foxchat"
	"github.com/iw2rmb/foxchat/chat"
	"github.com/iw2rmb/foxchat/clipboard"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("foxchat", flag.ContinueOnError)
	name := fs.String("name", "User", "display name of the local player")
	logFile := fs.String("log-file", "", "write logs to this file (the terminal belongs to the UI)")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")
	botReply := fs.String("bot-reply", chat.DefaultReply, "reply sent by the built-in bot")
	version := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Println(foxchat.ReadBuildInfo())
		return nil
	}

	logger, closeLog, err := newLogger(*logFile, *logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	clip := &clipboard.Fallback{
		Primary: clipboard.System{},
		OnError: func(err error) {
			logger.Warn("system clipboard unavailable, using in-memory clipboard", "err", err)
		},
	}

	m := chat.New(chat.Config{
		UserName:  *name,
		Responder: chat.Static{Reply: *botReply},
		Clipboard: clip,
		Logger:    logger,
	})
	logger.Info("starting", "version", foxchat.ReadBuildInfo().String())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("invalid log level: %s", level)
	}

	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h), func() { _ = f.Close() }, nil
}
