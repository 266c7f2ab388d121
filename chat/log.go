package chat

import (
	"image"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/foxchat/panel"
	"github.com/iw2rmb/foxchat/textedit"
)

// Sender identifies the author of a message.
type Sender struct {
	Name string
	Tag  panel.Tag
}

// Message is one chat log entry.
type Message struct {
	ID     uuid.UUID
	Sender Sender
	Text   string
	At     time.Time
}

// Log is the chat history panel.
//
// Messages are flattened into panel lines: the first line is prefixed with
// "Name: " and every other line is indented by the prefix width. Long lines
// wrap at the panel width. Adding a message or resizing scrolls to the
// newest line.
type Log struct {
	panel    *panel.Panel
	metrics  textedit.Metrics
	messages []Message
	now      func() time.Time
}

func NewLog(style panel.Style, m textedit.Metrics) *Log {
	return &Log{
		panel:   panel.New(panel.Config{Style: style}),
		metrics: m,
		now:     time.Now,
	}
}

func (l *Log) Panel() *panel.Panel { return l.panel }

// SetViewport updates the log geometry, re-wraps every message and scrolls
// to the bottom.
func (l *Log) SetViewport(r image.Rectangle) {
	if r == l.panel.Viewport() {
		return
	}
	l.panel.SetViewport(r)
	l.rebuild()
	l.panel.ScrollToBottom()
}

// AddMessage appends a message and returns its ID.
func (l *Log) AddMessage(from Sender, text string) uuid.UUID {
	msg := Message{ID: uuid.New(), Sender: from, Text: text, At: l.now()}
	l.messages = append(l.messages, msg)
	l.panel.AppendLines(l.flatten(msg)...)
	l.panel.ScrollToBottom()
	return msg.ID
}

// Messages returns a copy of the history in insertion order.
func (l *Log) Messages() []Message {
	return append([]Message(nil), l.messages...)
}

// Message looks up a message by ID.
func (l *Log) Message(id uuid.UUID) (Message, bool) {
	for _, msg := range l.messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return Message{}, false
}

// HandleMouse forwards wheel and scrollbar drag events to the panel.
func (l *Log) HandleMouse(msg tea.MouseMsg) bool {
	if !l.panel.WantsEvent(msg) {
		return false
	}
	return l.panel.HandleMouse(msg)
}

func (l *Log) View() string { return l.panel.View() }

func (l *Log) rebuild() {
	var lines []panel.Line
	for _, msg := range l.messages {
		lines = append(lines, l.flatten(msg)...)
	}
	l.panel.SetLines(lines)
}

func (l *Log) flatten(msg Message) []panel.Line {
	prefix := displayName(msg.Sender.Name) + ": "
	prefixW := l.metrics.Width(prefix)
	indent := strings.Repeat(" ", prefixW)
	width := max(1, l.panel.InnerWidth()-prefixW)

	var out []panel.Line
	for i, para := range strings.Split(msg.Text, "\n") {
		for j, ln := range textedit.Wrap(para, width, l.metrics) {
			lead := indent
			if i == 0 && j == 0 {
				lead = prefix
			}
			out = append(out, panel.Line{Text: lead + ln, Tag: msg.Sender.Tag})
		}
	}
	return out
}

// displayName upper-cases the first letter of name.
func displayName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
