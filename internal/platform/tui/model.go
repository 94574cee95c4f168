package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// FooterHeight is the number of terminal rows below the board: status and help.
const FooterHeight = 2

// Options configure a driver session.
type Options struct {
	Runtime core.RuntimeConfig
	Speed   int                // initial update ticks per second
	Ramp    config.SpeedConfig // how eating changes the rate
	Logger  *log.Logger        // nil discards log output
}

// Model is the Bubble Tea model that drives one snake session.
// Updates run on TickMsg at the current speed; rendering follows the program's frame rate.
type Model struct {
	game    *snake.Game
	screen  *core.Screen
	palette Palette
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	speed int
	ramp  config.SpeedConfig

	paused   bool
	quitting bool
}

// NewModel creates a model around an already constructed game.
func NewModel(game *snake.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	speed := opts.Speed
	if speed < 1 {
		speed = config.DefaultSpeed
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(opts.Runtime.ScreenW, boardRows(opts.Runtime.ScreenH)),
		palette: DefaultPalette(),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		speed:   speed,
		ramp:    opts.Ramp,
	}
}

func boardRows(termH int) int {
	return max(termH-FooterHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "speed", m.speed, "state", m.game.DebugState())
	return tickCmd(m.speed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, boardRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Steering is applied immediately and
// takes effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit requested", "length", m.game.State().Length)
		return m, tea.Quit
	case core.ActionPause:
		if m.game.Phase() == snake.PhaseRunning {
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		}
	case core.ActionNone:
	default:
		if !m.paused {
			m.game.ApplyInput(action)
		}
	}
	return m, nil
}

// handleTick runs one simulation update and schedules the next one.
// A collision stops the loop and ends the program.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.speed)
	}

	out, err := m.game.Update()
	if err != nil {
		m.logger.Info("game over", "err", err, "length", m.game.State().Length, "ticks", m.game.Snapshot().Tick)
		if m.logger.GetLevel() <= log.DebugLevel {
			m.game.Render(m.screen)
			m.logger.Debug("final frame", "board", "\n"+m.screen.String())
		}
		return m, tea.Quit
	}

	if !out.Speed.IsZero() {
		prev := m.speed
		m.speed = m.ramp.Next(m.speed, out.Speed.Delta)
		m.logger.Info("speed changed", "from", prev, "to", m.speed, "capped", m.ramp.Capped(m.speed))
	}
	if out.Kind == snake.Ate {
		m.logger.Info("food eaten", "length", m.game.State().Length, "speed", m.speed)
	}

	return m, tickCmd(m.speed)
}

// Speed returns the current update rate in ticks per second.
func (m Model) Speed() int {
	return m.speed
}

// Paused reports whether updates are suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Game returns the driven game.
func (m Model) Game() *snake.Game {
	return m.game
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the board, the status line and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.palette.Render(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) status() string {
	s := fmt.Sprintf(" speed %d/s", m.speed)
	if m.ramp.Capped(m.speed) {
		s += " (max)"
	}
	if m.paused {
		s += "  PAUSED"
	}
	return s
}

// Run starts the Bubble Tea program and blocks until the session ends.
// It returns the final game summary; when the snake crashed the error wraps
// snake.ErrGameOver.
func Run(game *snake.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	teaOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Runtime.FPS > 0 {
		teaOpts = append(teaOpts, tea.WithFPS(opts.Runtime.FPS))
	}

	final, err := tea.NewProgram(model, teaOpts...).Run()
	if err != nil {
		return game.State(), fmt.Errorf("tui: run program: %w", err)
	}

	if fm, ok := final.(Model); ok {
		game = fm.game
	}
	return game.State(), game.Err()
}
