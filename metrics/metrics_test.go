package metrics

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestCells_Width(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "abc", want: 3},
		{in: "a\tb", want: 3},
		{in: "日本", want: 4},
		{in: "é", want: 1},
	}
	for _, tc := range cases {
		if got := (Cells{}).Width(tc.in); got != tc.want {
			t.Fatalf("Cells.Width(%q): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFace_Width_Face7x13(t *testing.T) {
	f := Face{Face: basicfont.Face7x13}
	if got, want := f.Width("Hello world"), 77; got != want {
		t.Fatalf("Face.Width: got %d, want %d", got, want)
	}
	if got := (Face{}).Width("abc"); got != 0 {
		t.Fatalf("nil face width: got %d, want 0", got)
	}
}

func TestFixed_Width(t *testing.T) {
	if got, want := Fixed(7).Width("abcé"), 28; got != want {
		t.Fatalf("Fixed.Width: got %d, want %d", got, want)
	}
}
