// Package tui is the interactive mode: play one traced round at a time and
// ask whether to play another.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/nothanks/internal/display"
	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/statistics"
)

const prompt = "Press q to exit or any other key to play again"

const sidebarWidth = 28

// Options configures the interactive model
type Options struct {
	Color      bool
	Formatting game.FormattingOptions
	Logger     *log.Logger
}

// roundMsg carries the outcome of one round back to Update
type roundMsg struct {
	trace  string
	result *game.Result
	err    error
}

// Model is the Bubble Tea model for interactive play
type Model struct {
	engine *game.Engine
	logger *log.Logger

	// trace output of the round in flight; only touched by the play command
	buf bytes.Buffer

	viewport viewport.Model
	session  *statistics.Tally
	content  string
	last     *game.Result
	err      error
	playing  bool
	quitting bool

	width  int
	height int
}

// NewModel creates a model that plays rounds on engine. The model subscribes
// its own trace sink to the engine's event bus.
func NewModel(engine *game.Engine, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		engine:   engine,
		logger:   logger.WithPrefix("tui"),
		viewport: viewport.New(80, 20),
		session:  statistics.NewTally(),
	}

	renderer := display.NewRenderer(&m.buf, false)
	if opts.Color {
		renderer.SetColorProfile(lipgloss.ColorProfile())
	}
	engine.EventBus().Subscribe(display.NewTrace(&m.buf, renderer, opts.Formatting))
	return m
}

// Init plays the first round
func (m *Model) Init() tea.Cmd {
	return m.play()
}

func (m *Model) play() tea.Cmd {
	m.playing = true
	return func() tea.Msg {
		m.buf.Reset()
		result, err := m.engine.PlayRound(false)
		return roundMsg{trace: m.buf.String(), result: result, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case roundMsg:
		m.playing = false
		m.content = msg.trace
		if msg.err != nil {
			m.err = msg.err
			m.logger.Error("Round failed", "error", msg.err)
			m.content += "\n" + ErrorStyle.Render("Error: "+msg.err.Error())
		} else {
			m.err = nil
			m.last = msg.result
			m.session.Add(msg.result)
			m.logger.Debug("Round complete", "round", msg.result.RoundID, "winners", msg.result.Key())
		}
		m.viewport.SetContent(m.content)
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "down", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if m.playing {
			return m, nil
		}
		return m, m.play()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	// header, prompt and the pane border
	height := m.height - 4
	width := m.width - sidebarWidth - 4
	m.viewport.Width = max(width, 1)
	m.viewport.Height = max(height, 1)
}

// View renders the trace pane, the session sidebar and the prompt
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := HeaderStyle.Render(fmt.Sprintf(" No Thanks! round %d ", m.session.Trials+1))
	if m.last != nil {
		header = HeaderStyle.Render(fmt.Sprintf(" No Thanks! %d rounds played ", m.session.Trials))
	}

	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(paneBorderColor).
		Render(m.viewport.View())
	sidebar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(paneBorderColor).
		Width(sidebarWidth).
		Render(m.renderSidebar())

	footer := PromptStyle.Render(prompt)
	if m.playing {
		footer = InfoStyle.Render("Playing...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, pane, sidebar),
		footer,
	)
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(SidebarTitleStyle.Render("Session wins"))
	b.WriteString("\n")
	players := m.session.Players()
	if len(players) == 0 {
		b.WriteString(InfoStyle.Render("no rounds yet"))
		return b.String()
	}
	for _, ps := range players {
		fmt.Fprintf(&b, "%s: %d", ps.Name, ps.Wins+ps.SharedWins)
		if ps.SharedWins > 0 {
			fmt.Fprintf(&b, " (%d tied)", ps.SharedWins)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Content returns the trace of the last round
func (m *Model) Content() string {
	return m.content
}

// Session returns the tally of rounds played so far
func (m *Model) Session() *statistics.Tally {
	return m.session
}

// Err returns the error of the last round, if it failed
func (m *Model) Err() error {
	return m.err
}
