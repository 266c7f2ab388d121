package chat

import (
	"context"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/foxchat/panel"
	"github.com/iw2rmb/foxchat/textedit"
)

const (
	playerTitle = "Player"
	gameTitle   = "Game"
)

type tickMsg time.Time

type replyMsg struct {
	to    uuid.UUID
	reply string
	err   error
}

// Model is the chat window: player info on top, the chat log and game info
// side by side, the message input at the bottom and a key help status line.
type Model struct {
	cfg    Config
	keys   KeyMap
	styles Styles
	logger *slog.Logger

	width, height int
	layout        Regions

	focus *Focus
	log   *Log
	input *InputBox
	game  viewport.Model
	help  help.Model

	showHelp bool
	lastTick time.Time
}

func New(cfg Config) *Model {
	cfg = cfg.normalized()
	m := &Model{
		cfg:    cfg,
		keys:   *cfg.KeyMap,
		styles: *cfg.Styles,
		logger: cfg.Logger,
		focus:  NewFocus(AreaInput),
		game:   viewport.New(0, 0),
		help:   help.New(),
	}
	m.log = NewLog(m.styles.Log, cfg.Metrics)
	m.input = NewInputBox(textedit.Config{
		Panel:      panel.Config{Style: m.styles.Input},
		Metrics:    cfg.Metrics,
		Clipboard:  cfg.Clipboard,
		KeyMap:     m.keys.Input,
		Tag:        TagText,
		CaretWidth: 1,
	}, m.styles)
	m.input.SetActive(true)
	m.game.SetContent(cfg.GameInfo)
	return m
}

func (m *Model) Log() *Log { return m.log }

func (m *Model) Input() *InputBox { return m.input }

func (m *Model) Focus() Area { return m.focus.Current() }

func (m *Model) Regions() Regions { return m.layout }

func (m *Model) ShowingHelp() bool { return m.showHelp }

func (m *Model) Init() tea.Cmd { return m.tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tickMsg:
		now := time.Time(msg)
		dt := m.cfg.FrameInterval
		if !m.lastTick.IsZero() && now.After(m.lastTick) {
			dt = now.Sub(m.lastTick)
		}
		m.lastTick = now
		m.input.Engine().Tick(dt)
		return m, m.tick()
	case replyMsg:
		if msg.err != nil {
			m.logger.Warn("reply failed", "message", msg.to, "err", msg.err)
			return m, nil
		}
		m.log.AddMessage(Sender{Name: m.cfg.BotName, Tag: TagBot}, msg.reply)
		return m, nil
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.layout = m.cfg.Layout.Compute(width, height)

	m.log.SetViewport(m.layout.ChatText())
	m.input.SetRegions(m.layout)

	in := inner(m.layout.Game)
	m.game.Width = in.Dx()
	m.game.Height = max(0, in.Dy()-1)
	m.help.Width = max(0, width-4)

	m.logger.Debug("resize", "width", width, "height", height)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.CloseHelp, m.keys.Help) {
			m.showHelp = false
		}
		return nil
	}

	// "?" is ordinary text while typing.
	if key.Matches(msg, m.keys.Help) && (msg.String() != "?" || m.focus.Current() != AreaInput) {
		m.showHelp = true
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.FocusNext):
		m.setFocus(m.focus.Next())
		return nil
	case key.Matches(msg, m.keys.FocusPrev):
		m.setFocus(m.focus.Prev())
		return nil
	}

	switch m.focus.Current() {
	case AreaInput:
		if text, ok := m.input.HandleKey(msg); ok {
			return m.send(text)
		}
	case AreaChat:
		m.scrollLog(msg)
	case AreaGame:
		var cmd tea.Cmd
		m.game, cmd = m.game.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) scrollLog(msg tea.KeyMsg) {
	p := m.log.Panel()
	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		p.ScrollBy(1)
	case key.Matches(msg, m.keys.ScrollDown):
		p.ScrollBy(-1)
	case key.Matches(msg, m.keys.PageUp):
		p.ScrollBy(p.VisibleCount())
	case key.Matches(msg, m.keys.PageDown):
		p.ScrollBy(-p.VisibleCount())
	case key.Matches(msg, m.keys.Top):
		p.SetScrollTop(0)
	case key.Matches(msg, m.keys.Bottom):
		p.ScrollToBottom()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	pt := image.Pt(msg.X, msg.Y)

	// The log scrolls and drags whatever is focused.
	m.log.HandleMouse(msg)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if a := m.layout.AreaAt(pt); a != AreaNone {
			m.setFocus(a)
		}
	}

	text, sent, _ := m.input.HandleMouse(msg)
	if sent {
		return m.send(text)
	}

	if msg.Action == tea.MouseActionPress && tea.MouseEvent(msg).IsWheel() && pt.In(m.layout.Game) {
		var cmd tea.Cmd
		m.game, cmd = m.game.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) setFocus(a Area) {
	prev := m.focus.Current()
	m.focus.Set(a)
	m.input.SetActive(m.focus.Current() == AreaInput)
	if prev != m.focus.Current() {
		m.logger.Debug("focus", "from", prev, "to", m.focus.Current())
	}
}

// send posts a submitted message and asks the responder for a reply.
// Blank submissions are dropped.
func (m *Model) send(text string) tea.Cmd {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	id := m.log.AddMessage(Sender{Name: m.cfg.UserName, Tag: TagUser}, text)
	m.logger.Info("message sent", "id", id, "len", len(text))

	r, timeout := m.cfg.Responder, m.cfg.ReplyTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reply, err := r.Respond(ctx, text)
		return replyMsg{to: id, reply: reply, err: err}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	r := m.layout

	var rows []string
	if r.Player.Dy() > 0 {
		content := m.styles.PlayerTitle.Render(playerTitle) + "\n" + m.cfg.PlayerInfo
		rows = append(rows, box(m.boxStyle(AreaPlayer), content, r.Player.Dx(), r.Player.Dy()))
	}
	if r.Chat.Dy() > 0 {
		chat := box(m.boxStyle(AreaChat), m.log.View(), r.Chat.Dx(), r.Chat.Dy())
		content := m.styles.GameTitle.Render(gameTitle) + "\n" + m.game.View()
		game := box(m.boxStyle(AreaGame), content, r.Game.Dx(), r.Game.Dy())
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, chat, game))
	}
	if r.Input.Dy() > 0 {
		rows = append(rows, box(m.boxStyle(AreaInput), m.input.View(), r.Input.Dx(), r.Input.Dy()))
	}
	if r.Status.Dy() > 0 {
		rows = append(rows, fitLine(m.help.ShortHelpView(m.keys.ShortHelp()), r.Status.Dx()))
	}
	base := strings.Join(rows, "\n")

	if !m.showHelp {
		return base
	}
	fg := m.styles.HelpBox.Render(m.help.FullHelpView(m.keys.FullHelp()))
	return overlay.Composite(fg, base, overlay.Center, overlay.Center, 0, 0)
}

func (m *Model) boxStyle(a Area) lipgloss.Style {
	if m.focus.Current() == a {
		return m.styles.ActiveBox
	}
	return m.styles.Box
}
