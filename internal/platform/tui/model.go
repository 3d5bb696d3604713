package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// Game is a game the terminal driver can run.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	m := Model{
		game:       game,
		config:     cfg,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.Title())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "outcome", m.gameState.Outcome, "elapsed", m.gameState.Elapsed)
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver() {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Elapsed = frameTime(m.lastTick, now, m.config.TickRate, m.config.MaxFrameTime)
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver() {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("run restarted")
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	m.gameState = m.game.Step(m.inputFrame).State
	m.inputFrame.Clear()

	if m.gameState.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", m.gameState.Paused)
	}
	if m.gameState.GameOver() && !prev.GameOver() {
		m.logger.Info("run ended",
			"outcome", m.gameState.Outcome,
			"elapsed", m.gameState.Elapsed.Round(time.Millisecond),
			"progress", m.gameState.Progress,
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// layout sizes the game screen to the window minus the help footer.
func (m *Model) layout() {
	m.help.Width = m.width
	m.config.ScreenW = m.width
	m.config.ScreenH = m.screenHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
}

func (m Model) screenHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
