package chat

import (
	"context"
	"errors"
	"testing"
)

func TestFocus_TabCycle(t *testing.T) {
	f := NewFocus(AreaInput)

	want := []Area{AreaPlayer, AreaGame, AreaChat, AreaInput}
	for i, w := range want {
		if got := f.Next(); got != w {
			t.Fatalf("next #%d: got %v, want %v", i, got, w)
		}
	}
	if got, want := f.Prev(), AreaChat; got != want {
		t.Fatalf("prev: got %v, want %v", got, want)
	}
}

func TestFocus_SetIgnoresNone(t *testing.T) {
	f := NewFocus(AreaChat)
	f.Set(AreaNone)
	if got, want := f.Current(), AreaChat; got != want {
		t.Fatalf("current: got %v, want %v", got, want)
	}
	f.Set(AreaGame)
	if got, want := f.Current(), AreaGame; got != want {
		t.Fatalf("current: got %v, want %v", got, want)
	}
}

func TestStatic_Respond(t *testing.T) {
	got, err := Static{}.Respond(context.Background(), "hi")
	if err != nil || got != DefaultReply {
		t.Fatalf("default reply: got %q, %v", got, err)
	}

	got, err = Static{Reply: "ok"}.Respond(context.Background(), "hi")
	if err != nil || got != "ok" {
		t.Fatalf("custom reply: got %q, %v", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Static{}).Respond(ctx, "hi"); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled context: got %v, want %v", err, context.Canceled)
	}
}
