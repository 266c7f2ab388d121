package buffer

import (
	"reflect"
	"testing"
)

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_RowsAreGraphemeClusters(t *testing.T) {
	b := New("été\n", Options{})

	if got, want := b.Lines(), []string{"été", ""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if got, want := b.LineLen(0), 3; got != want {
		t.Fatalf("line len=%d, want %d", got, want)
	}
	if got := b.Line(5); got != "" {
		t.Fatalf("out of range line=%q, want empty", got)
	}
	if got, want := b.LineCount(), 2; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
}

func TestBuffer_SetText_MovesCursorToEndAndClearsHistory(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.InsertText("x")
	v := b.Version()

	ed := b.SetText("one\ntwo\nthree")
	if got, want := ed, (Edit{Row: 0, Old: 2, New: 3}); got != want {
		t.Fatalf("edit=%+v, want %+v", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 2, Col: 5}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("expected history cleared")
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}
