package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// levelWith builds a level from a terrain-only plan and places the given
// actors on it in order.
func levelWith(plan Plan, actors ...Actor) *Level {
	lvl := NewLevel(plan, DefaultPhysics(), nil)
	lvl.actors = actors
	lvl.playerID = 0
	lvl.coinsTotal = 0
	for _, a := range actors {
		switch a.Kind() {
		case KindPlayer:
			if lvl.playerID == 0 {
				lvl.playerID = a.ID()
			}
		case KindCoin:
			lvl.coinsTotal++
		}
	}
	return lvl
}

func vecNear(a, b core.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func coinAt(id ActorID, pos, size core.Vec) *Coin {
	return &Coin{body: body{id: id, pos: pos, size: size}, basePos: pos}
}

func TestNewLevelParsesPlan(t *testing.T) {
	lvl := NewLevel(Plan{
		"x@ o",
		"!=|v",
	}, DefaultPhysics(), nil)

	if lvl.Width() != 4 || lvl.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", lvl.Width(), lvl.Height())
	}

	cells := []struct {
		x, y int
		want Kind
	}{
		{0, 0, KindWall},
		{1, 0, KindEmpty}, // player spawn
		{2, 0, KindEmpty},
		{3, 0, KindEmpty}, // coin spawn
		{0, 1, KindLava},
		{1, 1, KindEmpty},
		{3, 1, KindEmpty},
	}
	for _, c := range cells {
		if got := lvl.Cell(c.x, c.y); got != c.want {
			t.Errorf("Cell(%d,%d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	actors := lvl.Actors()
	wantKinds := []Kind{KindPlayer, KindCoin, KindLava, KindLava, KindLava}
	if len(actors) != len(wantKinds) {
		t.Fatalf("got %d actors, expected %d", len(actors), len(wantKinds))
	}
	for i, k := range wantKinds {
		if actors[i].Kind() != k {
			t.Errorf("actor %d kind = %q, expected %q", i, actors[i].Kind(), k)
		}
	}

	p := lvl.Player()
	if p == nil {
		t.Fatal("Player() returned nil")
	}
	if p.Pos() != core.V(1, -0.5) {
		t.Errorf("player pos = %v, expected (1,-0.5)", p.Pos())
	}
	if p.Size() != core.V(0.8, 1.5) {
		t.Errorf("player size = %v, expected (0.8,1.5)", p.Size())
	}

	if c := actors[1]; !vecNear(c.Pos(), core.V(3.2, 0.1)) || c.Size() != core.V(0.6, 0.6) {
		t.Errorf("coin box = %v %v, expected (3.2,0.1) (0.6,0.6)", c.Pos(), c.Size())
	}

	speeds := []core.Vec{core.V(2, 0), core.V(0, 2), core.V(0, 3)}
	for i, want := range speeds {
		lava := actors[2+i].(*Lava)
		if lava.Speed() != want {
			t.Errorf("lava %d speed = %v, expected %v", i, lava.Speed(), want)
		}
		if lava.Drips() != (i == 2) {
			t.Errorf("lava %d drips = %v", i, lava.Drips())
		}
	}

	if lvl.Status() != StatusPlaying || lvl.FinishDelay() != 0 {
		t.Errorf("new level status = %v delay = %v", lvl.Status(), lvl.FinishDelay())
	}
	if lvl.CoinsLeft() != 1 {
		t.Errorf("CoinsLeft() = %d, expected 1", lvl.CoinsLeft())
	}
}

func TestNewLevelRaggedRows(t *testing.T) {
	lvl := NewLevel(Plan{"xxx", "x", "xxxxx"}, DefaultPhysics(), nil)

	if lvl.Width() != 3 {
		t.Fatalf("Width() = %d, expected first row width 3", lvl.Width())
	}
	if lvl.Cell(2, 1) != KindEmpty {
		t.Error("short rows should be padded with empty cells")
	}
	if lvl.Cell(2, 2) != KindWall {
		t.Error("long rows should keep their first Width() cells")
	}
}

func TestNewLevelFirstPlayerWins(t *testing.T) {
	lvl := NewLevel(Plan{"   ", "@ @"}, DefaultPhysics(), nil)

	p := lvl.Player()
	if p == nil {
		t.Fatal("Player() returned nil")
	}
	if p.ID() != lvl.Actors()[0].ID() {
		t.Errorf("player id = %d, expected the first spawned actor", p.ID())
	}
}

func TestNewLevelUnknownCharactersAreEmpty(t *testing.T) {
	lvl := NewLevel(Plan{"#?."}, DefaultPhysics(), nil)
	for x := 0; x < 3; x++ {
		if lvl.Cell(x, 0) != KindEmpty {
			t.Errorf("Cell(%d,0) = %q, expected empty", x, lvl.Cell(x, 0))
		}
	}
	if len(lvl.Actors()) != 0 {
		t.Error("unknown characters should not spawn actors")
	}
}

func TestObstacleAt(t *testing.T) {
	lvl := NewLevel(Plan{
		"x   ",
		"  ! ",
		"    ",
	}, DefaultPhysics(), nil)

	tests := []struct {
		name string
		pos  core.Vec
		size core.Vec
		want Kind
	}{
		{"free cell", core.V(1, 2), core.V(1, 1), KindEmpty},
		{"left of the grid", core.V(-0.5, 1), core.V(1, 1), KindWall},
		{"right of the grid", core.V(3.5, 1), core.V(1, 1), KindWall},
		{"above the grid", core.V(1, -0.5), core.V(1, 1), KindWall},
		{"below the grid", core.V(1, 2.5), core.V(1, 1), KindLava},
		{"side wall beats the bottom", core.V(-0.5, 2.5), core.V(1, 1), KindWall},
		{"wall cell", core.V(0.2, 0.2), core.V(0.5, 0.5), KindWall},
		{"lava cell", core.V(2, 1), core.V(1, 1), KindLava},
		{"row-major: wall row first", core.V(0, 0), core.V(3, 2), KindWall},
		{"row-major: lava below", core.V(1, 0), core.V(2, 2), KindLava},
		{"flush against the right edge", core.V(3, 2), core.V(1, 1), KindEmpty},
		{"flush against the bottom", core.V(0, 2), core.V(1, 1), KindEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lvl.ObstacleAt(tt.pos, tt.size); got != tt.want {
				t.Errorf("ObstacleAt(%v, %v) = %q, expected %q", tt.pos, tt.size, got, tt.want)
			}
		})
	}
}

func TestActorAt(t *testing.T) {
	plan := Plan{"     ", "     ", "     "}

	tests := []struct {
		name    string
		player  core.Vec
		size    core.Vec
		overlap bool
	}{
		{"overlapping", core.V(0, 0.5), core.V(1.5, 1), true},
		{"touching edges", core.V(0, 1), core.V(1, 1), false},
		{"tall box reaching down into the coin", core.V(1, 0), core.V(1, 1.5), true},
		{"ends exactly at the coin top", core.V(1, 0), core.V(1, 1), false},
		{"far away", core.V(3, 0), core.V(0.8, 1.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{body: body{id: 1, pos: tt.player, size: tt.size}}
			coin := coinAt(2, core.V(1, 1), core.V(1, 1))
			lvl := levelWith(plan, p, coin)

			got := lvl.ActorAt(p)
			if tt.overlap && got != Actor(coin) {
				t.Errorf("ActorAt() = %v, expected the coin", got)
			}
			if !tt.overlap && got != nil {
				t.Errorf("ActorAt() = %v, expected nil", got)
			}
		})
	}
}

func TestActorAtFirstInListOrder(t *testing.T) {
	p := &Player{body: body{id: 1, pos: core.V(0, 0), size: core.V(2, 2)}}
	first := coinAt(2, core.V(1, 1), core.V(0.5, 0.5))
	second := coinAt(3, core.V(0.5, 0.5), core.V(0.5, 0.5))
	lvl := levelWith(Plan{"   ", "   "}, p, first, second)

	if got := lvl.ActorAt(p); got != Actor(first) {
		t.Errorf("ActorAt() = %v, expected the first overlapping coin", got)
	}
}

func TestPlayerTouchedCoins(t *testing.T) {
	c1 := coinAt(1, core.V(0, 0), core.V(0.6, 0.6))
	c2 := coinAt(2, core.V(2, 0), core.V(0.6, 0.6))
	lvl := levelWith(Plan{"    "}, c1, c2)

	lvl.PlayerTouched(KindCoin, c1)
	if lvl.Status() != StatusPlaying {
		t.Errorf("status = %v after first of two coins, expected playing", lvl.Status())
	}
	if lvl.CoinsLeft() != 1 || lvl.CoinsCollected() != 1 {
		t.Errorf("coins left/collected = %d/%d, expected 1/1", lvl.CoinsLeft(), lvl.CoinsCollected())
	}

	lvl.PlayerTouched(KindCoin, c2)
	if lvl.Status() != StatusWon {
		t.Errorf("status = %v after last coin, expected won", lvl.Status())
	}
	if lvl.FinishDelay() != 1 {
		t.Errorf("FinishDelay() = %v, expected 1", lvl.FinishDelay())
	}

	lvl.PlayerTouched(KindLava, nil)
	if lvl.Status() != StatusWon {
		t.Error("lava after a win must not change the status")
	}
}

func TestPlayerTouchedLavaIdempotent(t *testing.T) {
	coin := coinAt(1, core.V(0, 0), core.V(0.6, 0.6))
	lvl := levelWith(Plan{"    "}, coin)

	lvl.PlayerTouched(KindLava, nil)
	if lvl.Status() != StatusLost || lvl.FinishDelay() != 1 {
		t.Fatalf("status/delay = %v/%v, expected lost/1", lvl.Status(), lvl.FinishDelay())
	}

	lvl.Animate(0.3, core.NewInputFrame())
	lvl.PlayerTouched(KindLava, nil)
	if math.Abs(lvl.FinishDelay()-0.7) > 1e-9 {
		t.Errorf("second lava touch reset the delay to %v", lvl.FinishDelay())
	}

	lvl.PlayerTouched(KindCoin, coin)
	if lvl.CoinsLeft() != 0 {
		t.Error("coin touched after a loss should still be removed")
	}
	if lvl.Status() != StatusWon || lvl.FinishDelay() != 1 {
		t.Errorf("status/delay = %v/%v, the last coin wins even after lava", lvl.Status(), lvl.FinishDelay())
	}

	lvl.PlayerTouched(KindWall, nil)
	lvl.PlayerTouched(KindEmpty, nil)
	if lvl.Status() != StatusWon {
		t.Error("wall and empty touches should be no-ops")
	}
}

func TestIsFinishedCountdown(t *testing.T) {
	lvl := levelWith(Plan{"    "})
	lvl.PlayerTouched(KindLava, nil)

	steps := []bool{false, false, true}
	for i, want := range steps {
		lvl.Animate(0.5, core.NewInputFrame())
		if got := lvl.IsFinished(); got != want {
			t.Errorf("after step %d: IsFinished() = %v, expected %v (delay %v)", i+1, got, want, lvl.FinishDelay())
		}
	}
}

func TestAnimateNotFinishedWhilePlaying(t *testing.T) {
	lvl := levelWith(Plan{"    "})
	for i := 0; i < 10; i++ {
		lvl.Animate(0.5, core.NewInputFrame())
	}
	if lvl.IsFinished() || lvl.FinishDelay() != 0 {
		t.Error("the countdown must not run while the level is playing")
	}
}

func TestAnimateRemovalDuringSubStep(t *testing.T) {
	// Player stands on the floor overlapping the only coin; the lava after
	// the coin in update order must still act in the same sub-step.
	p := newPlayer(1, core.V(1, 1))
	coin := coinAt(2, core.V(1.2, 1.1), core.V(0.6, 0.6))
	lava := newLava(3, core.V(3, 1), '=', DefaultPhysics())
	lvl := levelWith(Plan{
		"      ",
		"      ",
		"xxxxxx",
	}, p, coin, lava)

	lvl.Animate(0.01, core.NewInputFrame())

	if lvl.Status() != StatusWon {
		t.Fatalf("status = %v, expected won", lvl.Status())
	}
	if len(lvl.Actors()) != 2 {
		t.Errorf("got %d actors, expected the coin removed", len(lvl.Actors()))
	}
	if math.Abs(lava.Pos().X-3.02) > 1e-9 {
		t.Errorf("lava x = %v, expected 3.02", lava.Pos().X)
	}
}

func TestAnimateSubSteps(t *testing.T) {
	// A long frame is split into sub-steps so the falling player lands on
	// the floor instead of passing through it.
	lvl := NewLevel(Plan{
		"   ",
		"@  ",
		"   ",
		"   ",
		"   ",
		"xxx",
	}, DefaultPhysics(), nil)

	lvl.Animate(0.5, core.NewInputFrame())

	p := lvl.Player()
	if lvl.Status() != StatusPlaying {
		t.Fatalf("status = %v, player should land on the floor", lvl.Status())
	}
	if bottom := p.Pos().Y + p.Size().Y; bottom > 5 || bottom < 4.5 {
		t.Errorf("player bottom = %v, expected resting just above row 5", bottom)
	}
}
