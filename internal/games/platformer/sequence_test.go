package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// winPlan is won on the first sub-step: the player spawns overlapping its
// only coin.
var winPlan = Plan{
	"o   ",
	"@   ",
	"xxxx",
}

// losePlan is lost on the first sub-step: the player stands on lava.
var losePlan = Plan{
	"    ",
	"@   ",
	"!!!!",
}

// stepUntilEvent steps the sequence until it reports a transition.
func stepUntilEvent(t *testing.T, s *Sequence) Event {
	t.Helper()
	for i := 0; i < 100; i++ {
		if ev := s.Step(0.1, core.NewInputFrame()); ev != EventNone {
			return ev
		}
	}
	t.Fatal("sequence produced no event")
	return EventNone
}

func TestSequenceRestartThenGameOver(t *testing.T) {
	s := NewSequence([]Plan{winPlan, losePlan}, SequenceConfig{
		Physics: DefaultPhysics(),
		Lives:   2,
		Start:   1,
	})

	if ev := stepUntilEvent(t, s); ev != EventRestart {
		t.Fatalf("first loss: event = %v, expected restart", ev)
	}
	if s.Index() != 1 || s.Lives() != 1 {
		t.Errorf("after restart: index/lives = %d/%d, expected 1/1", s.Index(), s.Lives())
	}
	if s.Level().Status() != StatusPlaying {
		t.Error("restart should build a fresh level")
	}

	if ev := stepUntilEvent(t, s); ev != EventGameOver {
		t.Fatalf("last life: event = %v, expected game_over", ev)
	}
	if s.Index() != 0 {
		t.Errorf("after game over: index = %d, expected 0", s.Index())
	}
	if s.Lives() != 2 {
		t.Errorf("after game over: lives = %d, expected a full refill of 2", s.Lives())
	}
	if s.Stats().Deaths != 2 {
		t.Errorf("deaths = %d, expected 2", s.Stats().Deaths)
	}
	if s.Phase() != PhasePlaying {
		t.Error("game over should keep playing from the first level")
	}
}

func TestSequenceAdvanceAndComplete(t *testing.T) {
	s := NewSequence([]Plan{winPlan, winPlan}, SequenceConfig{
		Physics: DefaultPhysics(),
		Lives:   3,
	})

	if ev := stepUntilEvent(t, s); ev != EventAdvance {
		t.Fatalf("event = %v, expected advance", ev)
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, expected 1", s.Index())
	}

	if ev := stepUntilEvent(t, s); ev != EventCompleted {
		t.Fatalf("event = %v, expected completed", ev)
	}
	if s.Phase() != PhaseCompleted {
		t.Error("phase should be completed after the last level")
	}
	if s.Stats().CoinsCollected != 2 {
		t.Errorf("coins = %d, expected 2", s.Stats().CoinsCollected)
	}
	if s.Lives() != 3 {
		t.Errorf("lives = %d, winning should not cost lives", s.Lives())
	}

	if ev := s.Step(0.1, core.NewInputFrame()); ev != EventNone {
		t.Errorf("Step after completion = %v, expected none", ev)
	}

	s.Reset(0)
	if s.Phase() != PhasePlaying || s.Index() != 0 || s.Stats() != (Stats{}) {
		t.Error("Reset should start a new run")
	}
}

func TestSequenceFinishWaitsForDelay(t *testing.T) {
	s := NewSequence([]Plan{losePlan}, SequenceConfig{Physics: DefaultPhysics(), Lives: 3})

	// Lost on the first step; the one second countdown then runs
	// across the following steps and must drop below zero.
	for i := 0; i < 5; i++ {
		if ev := s.Step(0.25, core.NewInputFrame()); ev != EventNone {
			t.Fatalf("step %d produced %v before the delay ran out", i, ev)
		}
	}
	if ev := s.Step(0.25, core.NewInputFrame()); ev != EventRestart {
		t.Errorf("event = %v, expected restart once the delay is below zero", ev)
	}
}

func TestSequenceConfigBounds(t *testing.T) {
	s := NewSequence([]Plan{winPlan, winPlan}, SequenceConfig{
		Physics: DefaultPhysics(),
		Lives:   0,
		Start:   7,
	})

	if s.Lives() != 1 {
		t.Errorf("lives = %d, expected at least 1", s.Lives())
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, expected start clamped to 1", s.Index())
	}
	if s.LevelCount() != 2 {
		t.Errorf("LevelCount() = %d, expected 2", s.LevelCount())
	}
}

func TestSequenceSetPlans(t *testing.T) {
	s := NewSequence([]Plan{winPlan, winPlan, winPlan}, SequenceConfig{
		Physics: DefaultPhysics(),
		Start:   2,
	})
	before := s.Level()

	s.SetPlans(nil)
	if s.LevelCount() != 3 || s.Level() != before {
		t.Error("an empty plan list should be ignored")
	}

	s.SetPlans([]Plan{losePlan})
	if s.LevelCount() != 1 || s.Index() != 0 {
		t.Errorf("count/index = %d/%d, expected 1/0", s.LevelCount(), s.Index())
	}
	if s.Level() == before {
		t.Error("SetPlans should rebuild the current level")
	}
	if ev := stepUntilEvent(t, s); ev != EventGameOver && ev != EventRestart {
		t.Errorf("event = %v, the rebuilt level should come from the new plan", ev)
	}
}

func TestSequenceNoPlans(t *testing.T) {
	s := NewSequence(nil, SequenceConfig{Physics: DefaultPhysics()})

	if s.Level() != nil {
		t.Error("Level() should be nil without plans")
	}
	if ev := s.Step(0.1, core.NewInputFrame()); ev != EventNone {
		t.Errorf("Step() = %v, expected none", ev)
	}
}

func TestBuiltinPlansAreRectangular(t *testing.T) {
	plans := BuiltinPlans()
	if len(plans) != len(BuiltinNames()) {
		t.Fatalf("%d plans but %d names", len(plans), len(BuiltinNames()))
	}

	for i, plan := range plans {
		for y, row := range plan {
			if len(row) != len(plan[0]) {
				t.Errorf("plan %d row %d has width %d, expected %d", i, y, len(row), len(plan[0]))
			}
		}

		lvl := NewLevel(plan, DefaultPhysics(), nil)
		if lvl.Player() == nil {
			t.Errorf("plan %d has no player", i)
		}
		if lvl.CoinsLeft() == 0 {
			t.Errorf("plan %d has no coins", i)
		}
	}
}
