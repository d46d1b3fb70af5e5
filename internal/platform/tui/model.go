package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cookie-run/internal/core"
	"github.com/vovakirdan/cookie-run/internal/logging"
	"github.com/vovakirdan/cookie-run/internal/registry"
)

// Model is the Bubble Tea model for running a game.
//
// Ticks are only scheduled while the game is running. Every (re)start and
// every resume bumps the epoch, so a tick still in flight from an earlier
// chain is dropped instead of doubling the tick rate.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	epoch      int
	logger     *log.Logger
	runID      string
	quitting   bool
	goingBack  bool
}

// NewModel creates a Bubble Tea model for the given game and resets it.
// The game waits for the start command before ticking.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		logger:     logger.With("game", game.ID()),
	}
}

// Init does nothing: the first tick is scheduled by the start command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		action, isQuit := m.keys.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleAction(action)

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleAction routes one input action. Jump waits for the next tick;
// control actions are applied at once so they work while no tick is
// scheduled.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		m.goingBack = true
		return m, tea.Quit
	case core.ActionJump:
		if m.gameState.Running() {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil
	case core.ActionStart, core.ActionRestart:
		if m.gameState.Running() {
			return m, nil
		}
	}

	frame := core.NewInputFrame()
	frame.Set(action)
	prev := m.gameState
	m.gameState = m.game.Step(frame).State

	if !prev.Running() && m.gameState.Running() {
		if !prev.Started || prev.GameOver {
			m.runID = logging.NewRunID()
			m.logger.Info("run started", "run_id", m.runID, "seed", m.config.Seed)
		}
		m.inputFrame.Clear()
		m.epoch++
		return m, tickCmd(m.config.TickRate, m.epoch)
	}
	return m, nil
}

// handleTick processes simulation ticks from the current epoch only.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.epoch || !m.gameState.Running() {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		outcome := "lose"
		if m.gameState.Won {
			outcome = "win"
		}
		m.logger.Info("run finished", "run_id", m.runID, "outcome", outcome, "score", m.gameState.Score)
		return m, nil
	}
	if !m.gameState.Running() {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.epoch)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".cookierun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GoingBack reports whether the player asked to return to the menu.
func (m Model) GoingBack() bool {
	return m.goingBack
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player went back to the menu rather than quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (goBack bool, err error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Left click jumps
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.GoingBack(), nil
}
