package clipboard

import (
	"errors"
	"testing"
)

type brokenClipboard struct{ calls int }

func (b *brokenClipboard) ReadText() (string, error) { b.calls++; return "", errors.New("no display") }
func (b *brokenClipboard) WriteText(string) error    { b.calls++; return errors.New("no display") }

func TestMemory(t *testing.T) {
	var m Memory
	if got, _ := m.ReadText(); got != "" {
		t.Fatalf("zero memory clipboard: got %q, want empty", got)
	}
	if err := m.WriteText("hi"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, _ := m.ReadText(); got != "hi" {
		t.Fatalf("read after write: got %q, want %q", got, "hi")
	}
}

func TestFallback_SwitchesToMemoryAfterFailure(t *testing.T) {
	primary := &brokenClipboard{}
	var reported []error
	f := &Fallback{Primary: primary, OnError: func(err error) { reported = append(reported, err) }}

	if err := f.WriteText("one"); err != nil {
		t.Fatalf("write should fall back without error, got %v", err)
	}
	if got, _ := f.ReadText(); got != "one" {
		t.Fatalf("read after fallback: got %q, want %q", got, "one")
	}
	if got, want := primary.calls, 1; got != want {
		t.Fatalf("primary calls: got %d, want %d", got, want)
	}
	if got, want := len(reported), 1; got != want {
		t.Fatalf("reported errors: got %d, want %d", got, want)
	}
}

func TestFallback_UsesPrimaryWhileHealthy(t *testing.T) {
	primary := &Memory{}
	f := &Fallback{Primary: primary}

	if err := f.WriteText("x"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, _ := primary.ReadText(); got != "x" {
		t.Fatalf("primary content: got %q, want %q", got, "x")
	}
	if got, _ := f.Secondary.ReadText(); got != "" {
		t.Fatalf("secondary should be untouched, got %q", got)
	}
}

func TestBackendsSatisfyInterface(t *testing.T) {
	var _ Backend = System{}
	var _ Backend = &Memory{}
	var _ Backend = &Fallback{}
}
