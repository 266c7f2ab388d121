package chat

import (
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/foxchat/textedit"
)

func newInputBox() *InputBox {
	b := NewInputBox(textedit.Config{CaretWidth: 1}, DefaultStyles())
	b.SetRegions(DefaultLayout().Compute(100, 30))
	b.SetActive(true)
	return b
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestInputBox_SendButtonSubmits(t *testing.T) {
	b := newInputBox()
	b.Engine().SetText("hi")

	text, sent, consumed := b.HandleMouse(press(92, 26))
	if !sent || !consumed || text != "hi" {
		t.Fatalf("send press: got (%q, %v, %v)", text, sent, consumed)
	}
	if got := b.Engine().Text(); got != "" {
		t.Fatalf("text after send: got %q, want empty", got)
	}
}

func TestInputBox_ClickMovesCursor(t *testing.T) {
	b := newInputBox()
	b.Engine().SetText("hello")

	_, sent, consumed := b.HandleMouse(press(3, 26))
	if sent || !consumed {
		t.Fatalf("text press: got sent=%v consumed=%v", sent, consumed)
	}
	if got, want := b.Engine().Cursor(), (textedit.Pos{Line: 0, Col: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestInputBox_ViewFillsContentArea(t *testing.T) {
	b := newInputBox()
	b.Engine().SetText("hi")

	rows := strings.Split(b.View(), "\n")
	if got, want := len(rows), 2; got != want {
		t.Fatalf("rows: got %d, want %d", got, want)
	}
	for i, row := range rows {
		if got, want := ansi.StringWidth(row), 98; got != want {
			t.Fatalf("row %d width: got %d, want %d", i, got, want)
		}
	}
	if !strings.Contains(ansi.Strip(rows[0]), sendLabel) {
		t.Fatalf("send button missing from %q", ansi.Strip(rows[0]))
	}
}

func TestInputBox_Contains(t *testing.T) {
	b := newInputBox()
	if !b.Contains(image.Pt(1, 26)) {
		t.Fatalf("content origin not contained")
	}
	if b.Contains(image.Pt(0, 25)) {
		t.Fatalf("border contained")
	}
}
