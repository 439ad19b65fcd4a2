package platformer

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Phase is the top-level state of a Sequence.
type Phase int

const (
	PhasePlaying   Phase = iota // A level is running
	PhaseCompleted              // Every level has been won
)

// Event describes the transition a Sequence took after a level finished.
type Event int

const (
	EventNone      Event = iota
	EventRestart         // Level lost with lives to spare: same level again
	EventGameOver        // Last life lost: lives refilled, back to the first level
	EventAdvance         // Level won: next level
	EventCompleted       // Final level won
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventRestart:
		return "restart"
	case EventGameOver:
		return "game_over"
	case EventAdvance:
		return "advance"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Stats accumulates over a whole run.
type Stats struct {
	Deaths         int
	CoinsCollected int
	Elapsed        float64
}

// SequenceConfig configures a Sequence.
type SequenceConfig struct {
	Physics Physics
	Lives   int         // Lives per run; values below 1 mean 1
	Start   int         // Index of the first level
	Seed    int64       // Seeds coin wobble phases
	Logger  *log.Logger // Optional; nil discards
}

// Sequence drives an ordered list of plans: it runs the current level and,
// once it finishes, restarts it, advances, or resets the run.
type Sequence struct {
	plans    []Plan
	phys     Physics
	maxLives int
	lives    int
	index    int
	level    *Level
	phase    Phase
	stats    Stats
	rng      *rand.Rand
	logger   *log.Logger
}

// NewSequence creates a sequence and builds its first level.
func NewSequence(plans []Plan, cfg SequenceConfig) *Sequence {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	lives := cfg.Lives
	if lives < 1 {
		lives = 1
	}

	s := &Sequence{
		plans:    plans,
		phys:     cfg.Physics,
		maxLives: lives,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		logger:   logger,
	}
	s.Reset(cfg.Start)
	return s
}

// Reset starts a fresh run at level start with full lives.
func (s *Sequence) Reset(start int) {
	s.lives = s.maxLives
	s.phase = PhasePlaying
	s.stats = Stats{}
	s.startLevel(s.clampIndex(start))
}

// Step advances the current level by dt and applies the end-of-level
// transition once the level reports finished.
func (s *Sequence) Step(dt float64, in core.InputFrame) Event {
	if s.phase != PhasePlaying || s.level == nil {
		return EventNone
	}

	before := s.level.CoinsLeft()
	s.level.Animate(dt, in)
	s.stats.Elapsed += dt
	if picked := before - s.level.CoinsLeft(); picked > 0 {
		s.stats.CoinsCollected += picked
	}

	if !s.level.IsFinished() {
		return EventNone
	}
	return s.finish(s.level.Status())
}

func (s *Sequence) finish(status Status) Event {
	switch status {
	case StatusLost:
		s.stats.Deaths++
		s.lives--
		if s.lives > 0 {
			s.logger.Info("level lost", "level", s.index, "lives", s.lives)
			s.startLevel(s.index)
			return EventRestart
		}
		s.logger.Info("out of lives, back to the first level", "level", s.index)
		s.lives = s.maxLives
		s.startLevel(0)
		return EventGameOver

	case StatusWon:
		if s.index < len(s.plans)-1 {
			s.logger.Info("level won", "level", s.index, "next", s.index+1)
			s.startLevel(s.index + 1)
			return EventAdvance
		}
		s.logger.Info("all levels won", "deaths", s.stats.Deaths, "coins", s.stats.CoinsCollected)
		s.phase = PhaseCompleted
		return EventCompleted
	}
	return EventNone
}

// SetPlans swaps in a new plan list and rebuilds the current level from it.
// The level index is clamped to the new list. An empty list is ignored.
func (s *Sequence) SetPlans(plans []Plan) {
	if len(plans) == 0 {
		s.logger.Warn("ignoring empty plan list")
		return
	}
	s.plans = plans
	s.logger.Info("plans replaced", "count", len(plans))
	if s.phase == PhasePlaying {
		s.startLevel(s.clampIndex(s.index))
	}
}

func (s *Sequence) startLevel(n int) {
	s.index = n
	if len(s.plans) == 0 {
		s.level = nil
		return
	}
	s.level = NewLevel(s.plans[n], s.phys, s.rng)
	s.logger.Debug("level started", "level", n, "lives", s.lives, "coins", s.level.CoinsLeft())
}

func (s *Sequence) clampIndex(n int) int {
	return core.Clamp(n, 0, core.Max(len(s.plans)-1, 0))
}

// Level returns the level currently being played.
func (s *Sequence) Level() *Level { return s.level }

// Index returns the zero-based index of the current level.
func (s *Sequence) Index() int { return s.index }

// LevelCount returns the number of plans.
func (s *Sequence) LevelCount() int { return len(s.plans) }

// Lives returns the remaining lives, including the current attempt.
func (s *Sequence) Lives() int { return s.lives }

// Phase returns whether the run is still in progress.
func (s *Sequence) Phase() Phase { return s.phase }

// Stats returns the accumulated run statistics.
func (s *Sequence) Stats() Stats { return s.stats }
