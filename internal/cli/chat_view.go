package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/ozpath/internal/assistant"
	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatReplyMsg carries an assistant answer back into Update.
type chatReplyMsg struct {
	resp assistant.Response
}

type chatKeyMap struct {
	Send key.Binding
	Quit key.Binding
}

var chatKeys = chatKeyMap{
	Send: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// chatView is the interactive assistant. The transcript lives only in
// memory; each question is answered independently.
type chatView struct {
	ctx      context.Context
	provider *assistant.Provider
	conv     *assistant.Conversation

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	pending bool
	ready   bool
}

func newChatView(ctx context.Context, provider *assistant.Provider) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Ask about visas, points, English tests..."
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleHighlight

	vp := viewport.New(80, 20)
	vp.KeyMap = chatViewportKeyMap()

	v := &chatView{
		ctx:      ctx,
		provider: provider,
		conv:     assistant.NewConversation(),
		input:    ti,
		viewport: vp,
		spinner:  sp,
	}
	v.refresh()
	return v
}

// chatViewportKeyMap scrolls with arrows and page keys only, so typed
// letters always reach the input.
func chatViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.viewport.Width = msg.Width
		v.viewport.Height = max(msg.Height-4, 3)
		v.input.Width = max(msg.Width-6, 10)
		v.ready = true
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, chatKeys.Quit):
			return v, tea.Quit
		case key.Matches(msg, chatKeys.Send):
			return v.send()
		case msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown,
			msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return v, cmd
		}

	case chatReplyMsg:
		v.pending = false
		v.conv.AddReply(msg.resp)
		v.refresh()
		return v, nil

	case spinner.TickMsg:
		if !v.pending {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		v.refresh()
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(formatter.StyleHighlight.Render("you") + formatter.Dim("> "))
	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim(chatKeys.Send.Help().Key + " " + chatKeys.Send.Help().Desc +
		" • " + chatKeys.Quit.Help().Key + " " + chatKeys.Quit.Help().Desc))
	return b.String()
}

// ── input handling ───────────────────────────────────────────────────────────

func (v *chatView) send() (tea.Model, tea.Cmd) {
	if v.pending {
		return v, nil
	}
	text := strings.TrimSpace(v.input.Value())
	switch strings.ToLower(text) {
	case "/quit", "/exit", "quit", "exit":
		return v, tea.Quit
	}
	if !v.conv.AddUser(text) {
		return v, nil
	}
	v.input.Reset()
	v.pending = true
	v.refresh()

	ctx, provider := v.ctx, v.provider
	ask := func() tea.Msg {
		return chatReplyMsg{resp: provider.GetResponse(ctx, text)}
	}
	return v, tea.Batch(v.spinner.Tick, ask)
}

// refresh re-renders the transcript into the viewport and scrolls to the
// newest turn.
func (v *chatView) refresh() {
	v.viewport.SetContent(renderTranscript(v.conv.Turns, v.viewport.Width, v.pending, v.spinner.View()))
	v.viewport.GotoBottom()
}

func renderTranscript(turns []assistant.Turn, width int, pending bool, spin string) string {
	wrap := lipgloss.NewStyle().Width(max(width-2, 20))
	var b strings.Builder
	for _, t := range turns {
		switch t.Speaker {
		case assistant.SpeakerUser:
			b.WriteString(formatter.StyleAccent.Bold(true).Render("You") + "\n")
			b.WriteString(wrap.Render(t.Text) + "\n\n")
		default:
			label := formatter.StyleTitle.Render("Assistant")
			if t.Status == assistant.StatusError {
				label += formatter.Dim(" (offline)")
			}
			b.WriteString(label + "\n")
			b.WriteString(wrap.Render(formatter.StyleText.Render(t.Text)) + "\n\n")
		}
	}
	if pending {
		b.WriteString(spin + " " + formatter.Dim("Thinking...") + "\n")
	}
	return b.String()
}
