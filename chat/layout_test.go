package chat

import (
	"image"
	"testing"
)

func TestLayout_DefaultRegions(t *testing.T) {
	r := DefaultLayout().Compute(100, 30)

	cases := []struct {
		name string
		got  image.Rectangle
		want image.Rectangle
	}{
		{"player", r.Player, image.Rect(0, 0, 100, 3)},
		{"chat", r.Chat, image.Rect(0, 3, 70, 25)},
		{"game", r.Game, image.Rect(70, 3, 100, 25)},
		{"input", r.Input, image.Rect(0, 25, 100, 29)},
		{"status", r.Status, image.Rect(0, 29, 100, 30)},
		{"send", r.Send, image.Rect(91, 26, 99, 27)},
		{"chat text", r.ChatText(), image.Rect(1, 4, 68, 24)},
		{"input text", r.InputText(), image.Rect(1, 26, 89, 28)},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestLayout_RowsAlwaysAddUpToHeight(t *testing.T) {
	l := DefaultLayout()
	for h := 0; h <= 60; h++ {
		r := l.Compute(80, h)
		got := r.Player.Dy() + r.Chat.Dy() + r.Input.Dy() + r.Status.Dy()
		if got != h {
			t.Fatalf("height %d: rows add up to %d", h, got)
		}
		if r.Chat.Dy() != r.Game.Dy() {
			t.Fatalf("height %d: chat and game rows differ: %d vs %d", h, r.Chat.Dy(), r.Game.Dy())
		}
	}
}

func TestLayout_SmallTerminalDropsStatusAndSend(t *testing.T) {
	r := DefaultLayout().Compute(10, 9)
	if !r.Status.Empty() {
		t.Fatalf("status bar on a 9-row terminal: %v", r.Status)
	}
	if !r.Send.Empty() {
		t.Fatalf("send button without room: %v", r.Send)
	}
	if got, want := r.InputText(), image.Rect(1, 7, 8, 8); got != want {
		t.Fatalf("input text: got %v, want %v", got, want)
	}
}

func TestLayout_StatusBarIsOptOut(t *testing.T) {
	shown := Layout{}.Compute(100, 30)
	if got, want := shown.Status, image.Rect(0, 29, 100, 30); got != want {
		t.Fatalf("status of zero layout: got %v, want %v", got, want)
	}

	hidden := Layout{HideStatusBar: true}.Compute(100, 30)
	if !hidden.Status.Empty() {
		t.Fatalf("hidden status bar: got %v, want empty", hidden.Status)
	}
	if got, want := hidden.Input.Max.Y, 30; got != want {
		t.Fatalf("input bottom without status bar: got %d, want %d", got, want)
	}
}

func TestLayout_InvalidRatiosFallBackToDefaults(t *testing.T) {
	got := Layout{PlayerInfoRatio: -1, ChatWidthRatio: 2, InputRatio: 1}.Compute(100, 30)
	want := DefaultLayout().Compute(100, 30)
	if got != want {
		t.Fatalf("regions: got %+v, want %+v", got, want)
	}
}

func TestRegions_AreaAt(t *testing.T) {
	r := DefaultLayout().Compute(100, 30)
	cases := []struct {
		pt   image.Point
		want Area
	}{
		{image.Pt(5, 1), AreaPlayer},
		{image.Pt(10, 10), AreaChat},
		{image.Pt(80, 10), AreaGame},
		{image.Pt(10, 26), AreaInput},
		{image.Pt(95, 26), AreaInput},
		{image.Pt(10, 29), AreaNone},
		{image.Pt(-1, 0), AreaNone},
	}
	for _, tc := range cases {
		if got := r.AreaAt(tc.pt); got != tc.want {
			t.Fatalf("AreaAt(%v): got %v, want %v", tc.pt, got, tc.want)
		}
	}
}
