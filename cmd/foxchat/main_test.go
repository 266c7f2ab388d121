package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	cases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "foxchat.log")
		logger, closeLog, err := newLogger(path, tc.level)
		if err != nil {
			t.Fatalf("newLogger(%q): %v", tc.level, err)
		}
		if !logger.Enabled(context.Background(), tc.want) {
			t.Fatalf("level %q: %v disabled", tc.level, tc.want)
		}
		if tc.want > slog.LevelDebug && logger.Enabled(context.Background(), tc.want-4) {
			t.Fatalf("level %q: %v enabled", tc.level, tc.want-4)
		}
		closeLog()
	}
}

func TestNewLogger_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foxchat.log")
	logger, closeLog, err := newLogger(path, "info")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := string(data); !strings.Contains(got, `"msg":"hello"`) || !strings.Contains(got, `"k":1`) {
		t.Fatalf("log contents: got %q", got)
	}
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Fatalf("unknown level accepted")
	}
}

func TestRun_Version(t *testing.T) {
	if err := run([]string{"-version"}); err != nil {
		t.Fatalf("run -version: %v", err)
	}
}

func TestRun_BadFlag(t *testing.T) {
	if err := run([]string{"-nope"}); err == nil {
		t.Fatalf("unknown flag accepted")
	}
}
