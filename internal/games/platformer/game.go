package platformer

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Game adapts a Sequence to the registry.Game interface: it owns the
// viewport, pause state and the end-of-level banner.
type Game struct {
	seq     *Sequence
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	names   []string
	view    Viewport
	paused  bool

	banner         *gween.Tween // Slides the win/loss box in; nil while playing
	bannerProgress float32
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	startLevel       int
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir makes the game load its levels from a directory of YAML
// level files instead of the built-in plans.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel sets the zero-based level a new run starts on.
func SetStartLevel(n int) {
	startLevel = n
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lava Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	plans, names := loadPlans()
	g.names = names
	g.seq = NewSequence(plans, SequenceConfig{
		Physics: PhysicsFromConfig(cfg),
		Lives:   cfg.Gameplay.Lives,
		Start:   startLevel,
		Seed:    runtime.Seed,
		Logger:  logger,
	})
	g.paused = false
	g.levelChanged()
}

// loadPlans returns the configured level pack, or the built-in plans when
// no directory is set or it yields nothing usable.
func loadPlans() ([]Plan, []string) {
	if levelsDir == "" {
		return BuiltinPlans(), BuiltinNames()
	}

	lvls, err := levels.NewLoader(levelsDir, logger).LoadAll()
	if err != nil || len(lvls) == 0 {
		logger.Warn("falling back to built-in levels", "dir", levelsDir, "error", err)
		return BuiltinPlans(), BuiltinNames()
	}
	return PlansOf(lvls)
}

// PlansOf converts loaded level files into plans and their display names.
func PlansOf(lvls []levels.Level) ([]Plan, []string) {
	plans := make([]Plan, len(lvls))
	for i, p := range levels.Plans(lvls) {
		plans[i] = Plan(p)
	}
	names := make([]string, len(lvls))
	for i, l := range lvls {
		names[i] = l.Name
	}
	return plans, names
}

// ReloadLevels re-reads the level directory and swaps the plans into the
// running sequence. The current level restarts from its new plan.
func (g *Game) ReloadLevels() error {
	if levelsDir == "" {
		return errors.New("platformer: no level directory to reload")
	}
	lvls, err := levels.NewLoader(levelsDir, logger).LoadAll()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		return errors.New("platformer: level directory has no valid levels")
	}
	plans, names := PlansOf(lvls)
	g.names = names
	g.seq.SetPlans(plans)
	g.levelChanged()
	return nil
}

// Step advances the game by one tick of the configured tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(g.runtime.TickDuration(), in)
}

// Advance advances the game by dt seconds of wall time. dt is clamped to
// the configured maximum frame so a stalled terminal cannot explode the
// sub-step count.
func (g *Game) Advance(dt float64, in core.InputFrame) core.StepResult {
	if g.seq.Phase() == PhaseCompleted {
		if in.Has(core.ActionRestart) {
			g.seq.Reset(0)
			g.levelChanged()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt = core.ClampF(dt, 0, g.cfg.Physics.MaxFrame)
	if ev := g.seq.Step(dt, in); ev != EventNone {
		g.levelChanged()
		return core.StepResult{State: g.State()}
	}

	if lvl := g.seq.Level(); lvl != nil && lvl.Status() != StatusPlaying {
		if g.banner == nil {
			slide := core.ClampF(g.cfg.Gameplay.FinishDelay/2, 0.1, 1)
			g.banner = gween.New(0, 1, float32(slide), ease.OutBounce)
		}
		g.bannerProgress, _ = g.banner.Update(float32(dt))
	}

	return core.StepResult{State: g.State()}
}

// levelChanged tears down per-level display state.
func (g *Game) levelChanged() {
	g.view = NewViewport(g.cfg.Display.Scale)
	g.banner = nil
	g.bannerProgress = 0
}

// Sequence exposes the level sequence for inspection.
func (g *Game) Sequence() *Sequence {
	return g.seq
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.seq == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.seq.Stats().CoinsCollected,
		GameOver: g.seq.Phase() == PhaseCompleted,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
