package textedit

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/iw2rmb/foxchat/metrics"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"empty", "", 10, []string{""}},
		{"word boundary", "Hello world foo", 10, []string{"Hello", "world foo"}},
		{"long word is cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newlines always break", "a\n\nb", 10, []string{"a", "", "b"}},
		{"crlf", "a\r\nb", 10, []string{"a", "b"}},
		{"runs of spaces are dropped at breaks", "aaa    bbb", 5, []string{"aaa", "bbb"}},
		{"leading spaces are kept", "   abcdef", 4, []string{"   a", "bcde", "f"}},
		{"zero width still progresses", "abc", 0, []string{"a", "b", "c"}},
		{"wide runes", "日本語です", 5, []string{"日本", "語で", "す"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width, metrics.Cells{})
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Wrap(%q, %d): got %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_FontFace(t *testing.T) {
	got := Wrap("Hello world foo", 70, metrics.Face{Face: basicfont.Face7x13})
	if want := []string{"Hello", "world foo"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapParagraph_JoinRestoresText(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"  indented   and   spaced  ",
		"averyveryverylongword and more",
		"trailing space ",
	}
	for _, text := range texts {
		for width := 1; width <= 12; width++ {
			segs := wrapParagraph(text, width, metrics.Cells{})
			var sb strings.Builder
			for _, seg := range segs {
				sb.WriteString(seg.sep)
				sb.WriteString(seg.text)
			}
			if got := sb.String(); got != text {
				t.Fatalf("width %d: joined %q, want %q", width, got, text)
			}
			if segs[0].sep != "" {
				t.Fatalf("width %d: first segment has separator %q", width, segs[0].sep)
			}
		}
	}
}

func TestWrap_IsIdempotent(t *testing.T) {
	text := "lorem ipsum dolor sit amet, consectetur adipiscing elit"
	once := Wrap(text, 11, metrics.Cells{})
	again := Wrap(strings.Join(once, "\n"), 11, metrics.Cells{})
	if !reflect.DeepEqual(once, again) {
		t.Fatalf("rewrapping wrapped lines: got %q, want %q", again, once)
	}
}
