package tui

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/levelwatch"
	"github.com/vovakirdan/froggit/internal/registry"
)

// footerLines is the room kept below the board for status and help.
const footerLines = 3

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	session    *registry.Session
	canvas     *ScreenCanvas
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	width      int
	height     int

	summary     table.Model
	showSummary bool
	quitting    bool
}

// NewModel creates a model for the session, sized to the terminal.
func NewModel(s *registry.Session) Model {
	width, height := s.Runtime.ScreenW, s.Runtime.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	m := Model{
		session:    s,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  s.Game.State(),
	}
	m.resize(width, height)
	return m
}

// Init starts the tick loop and the level watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.session.Runtime.TickRate),
		waitReload(m.session.Reloads),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.showSummary {
			return m, nil
		}
		return m.handleTick(time.Time(msg))

	case ReloadMsg:
		if m.session.Apply(levelwatch.Update(msg)) {
			m.resize(m.width, m.height)
		}
		return m, waitReload(m.session.Reloads)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showSummary {
		if key.Matches(msg, m.keys.Quit) || msg.String() == "enter" {
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		return m, cmd
	}

	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		if sum, ok := m.session.Summary(); ok && sum.Events > 0 {
			m.summary = newSummaryTable(sum, m.session.Runtime.TickRate)
			m.showSummary = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.session.Runtime.FrameDelta())
	m.lastTick = now

	result := m.session.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.session.Runtime.TickRate)
}

// resize fits the board to a width x height terminal.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	w, h := m.session.Game.Size()
	cell := m.session.Game.CellSize()
	cols := int(math.Round(w / cell))
	rows := int(math.Round(h / cell))
	// Border and padding of the board box take four columns and two rows.
	cellW, cellH := FitCells(width-4, height-footerLines-2, cols, rows)
	m.canvas = NewScreenCanvas(w, h, cell, cellW, cellH)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showSummary {
		return m.summaryView()
	}

	m.canvas.Screen.Clear()
	m.session.Game.Draw(m.canvas)

	board := boxStyle.Render(RenderScreen(m.canvas.Screen))
	status := statusStyle.Render(fmt.Sprintf("SCORE %d   LIVES %d", m.gameState.Score, m.gameState.Lives))
	footer := helpStyle.Render(m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Center, board, status, footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) summaryView() string {
	title := statusStyle.Render("FROGGIT - SESSION")
	hint := helpStyle.Render("enter/q to exit")
	body := lipgloss.JoinVertical(lipgloss.Center, title, boxStyle.Render(m.summary.View()), hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Run starts the Bubble Tea program for the session.
func Run(s *registry.Session) error {
	p := tea.NewProgram(
		NewModel(s),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
