package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Options configures a game session.
type Options struct {
	Logger      *log.Logger   // Optional; nil discards
	HoldWindow  time.Duration // Key hold window; zero uses DefaultHoldWindow
	LevelEvents <-chan string // Optional; changed level files trigger a reload
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      GameKeyMap
	help      help.Model
	tracker   *KeyTracker
	gameState core.GameState
	lastTick  time.Time
	events    <-chan string
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH, false)),
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    h,
		tracker: NewKeyTracker(opts.HoldWindow),
		events:  opts.LevelEvents,
		logger:  logger,
	}
}

// playHeight leaves room at the bottom for the help view: one line, or
// one per FullHelp row when expanded.
func playHeight(h int, fullHelp bool) int {
	rows := 1
	if fullHelp {
		rows = 3
	}
	return core.Max(h-rows, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tea.Batch(tickCmd(m.config.TickRate), waitForLevelChange(m.events))
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

	case LevelsChangedMsg:
		return m.handleLevelsChanged(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, playHeight(m.config.ScreenH, m.help.ShowAll))
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.tracker.Press(action, time.Now())
	return m, nil
}

// handleResize processes window resize events. The level keeps running;
// the viewport adapts on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height, m.help.ShowAll))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickDuration()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	in := m.tracker.Frame(now)
	var result core.StepResult
	if adv, ok := m.game.(registry.Advancer); ok {
		result = adv.Advance(dt, in)
	} else {
		result = m.game.Step(in)
	}

	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("run complete", "game", m.game.ID(), "score", result.State.Score)
	}
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// handleLevelsChanged reloads level files after the watcher saw a change.
func (m Model) handleLevelsChanged(msg LevelsChangedMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(registry.Reloader); ok {
		if err := r.ReloadLevels(); err != nil {
			m.logger.Warn("level reload failed", "path", msg.Path, "error", err)
		} else {
			m.logger.Info("levels reloaded", "path", msg.Path)
			m.tracker.Reset()
		}
	}
	return m, waitForLevelChange(m.events)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
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
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
