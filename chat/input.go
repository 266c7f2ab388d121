package chat

import (
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/foxchat/textedit"
)

const sendLabel = "[ Send ]"

// InputBox is the message input: a text-edit engine plus a send button.
type InputBox struct {
	engine *textedit.Engine
	styles Styles

	// area is the box content (inside the border); send is the button.
	area image.Rectangle
	send image.Rectangle
}

func NewInputBox(cfg textedit.Config, styles Styles) *InputBox {
	return &InputBox{engine: textedit.New(cfg), styles: styles}
}

func (b *InputBox) Engine() *textedit.Engine { return b.engine }

// SetRegions lays the box out from the window regions.
func (b *InputBox) SetRegions(r Regions) {
	b.area = inner(r.Input)
	b.send = r.Send
	b.engine.SetViewport(r.InputText())
}

// Contains reports whether pt lies inside the box content.
func (b *InputBox) Contains(pt image.Point) bool { return pt.In(b.area) }

func (b *InputBox) SetActive(active bool) { b.engine.SetActive(active) }

func (b *InputBox) Active() bool { return b.engine.Active() }

// HandleKey forwards keys to the engine. It returns the submitted text and
// true on a submit key.
func (b *InputBox) HandleKey(msg tea.KeyMsg) (string, bool) {
	return b.engine.HandleKey(msg)
}

// HandleMouse handles the send button and forwards everything else to the
// engine. A left press on the button submits regardless of focus.
func (b *InputBox) HandleMouse(msg tea.MouseMsg) (text string, sent, consumed bool) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		image.Pt(msg.X, msg.Y).In(b.send) {
		return b.engine.Submit(), true, true
	}
	return "", false, b.engine.HandleMouse(msg)
}

// View renders the box content: the engine view, then the send button column.
func (b *InputBox) View() string {
	text := b.engine.View()
	if b.send.Empty() {
		return text
	}

	btn := b.styles.SendButton
	if b.engine.Active() {
		btn = b.styles.SendButtonActive
	}
	w := b.send.Dx()
	col := make([]string, b.area.Dy())
	for i := range col {
		if b.area.Min.Y+i == b.send.Min.Y {
			col[i] = " " + btn.Render(fitLine(sendLabel, w))
		} else {
			col[i] = strings.Repeat(" ", w+1)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, text, strings.Join(col, "\n"))
}
