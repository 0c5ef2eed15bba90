package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dasher/internal/core"
	"github.com/vovakirdan/tui-dasher/internal/storage"
)

// RunStore records finished runs. *storage.Store satisfies it.
type RunStore interface {
	SaveRun(gameID string, outcome storage.Outcome, score int, elapsed float64) (string, error)
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      RunStore
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	maxFrame   float64 // upper bound for a single step, in seconds
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game core.Game, store RunStore, logger *log.Logger, cfg core.RuntimeConfig, maxFrame float64) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		maxFrame:   maxFrame,
		inputFrame: core.NewInputFrame(),
	}
}

// playRows reserves the bottom terminal row for the help line.
func playRows(height int) int {
	if height <= 1 {
		return height
	}
	return height - 1
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID())

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
// The world is measured in pixels, so only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate, m.maxFrame)
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.keys.Restart.SetEnabled(false)
		m.inputFrame.Clear()
		m.logger.Info("run started", "game", m.game.ID())
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
		m.keys.Restart.SetEnabled(true)
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun logs the verdict and stores it when a store is configured.
func (m Model) recordRun() {
	outcome := storage.OutcomeLose
	if m.gameState.Won {
		outcome = storage.OutcomeWin
	}
	m.logger.Info("run finished",
		"outcome", outcome,
		"score", m.gameState.Score,
		"elapsed", m.gameState.Elapsed,
	)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(m.game.ID(), outcome, m.gameState.Score, m.gameState.Elapsed)
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for the given game.
func Run(game core.Game, store RunStore, logger *log.Logger, cfg core.RuntimeConfig, maxFrame float64) error {
	model := NewModel(game, store, logger, cfg, maxFrame)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
