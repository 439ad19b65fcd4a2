package platformer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Level owns the static terrain grid and the actors of one level attempt.
// A Level is never reused: restarting builds a new one from the same plan.
type Level struct {
	width  int
	height int
	grid   [][]Kind // [row][col], only empty/wall/lava

	actors   []Actor
	playerID ActorID // key into actors; 0 when the plan had no '@'

	status      Status
	finishDelay float64 // Counts down once status leaves StatusPlaying

	coinsTotal int
	phys       Physics
}

// NewLevel parses a plan. The width is taken from the first row; shorter
// rows are padded with empty cells and longer rows are cut. A plan without
// exactly one '@' is the caller's problem: the first player found is used.
//
// rng seeds coin wobble phases. A nil rng uses a fixed seed.
func NewLevel(plan Plan, phys Physics, rng *rand.Rand) *Level {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	lvl := &Level{
		height: len(plan),
		grid:   make([][]Kind, len(plan)),
		phys:   phys,
	}
	if len(plan) > 0 {
		lvl.width = len(plan[0])
	}

	var nextID ActorID
	for y, line := range plan {
		row := make([]Kind, lvl.width)
		for x := 0; x < lvl.width; x++ {
			ch := byte(' ')
			if x < len(line) {
				ch = line[x]
			}

			if spawn, ok := actorChars[ch]; ok {
				nextID++
				pos := core.V(float64(x), float64(y))
				lvl.actors = append(lvl.actors, spawn(nextID, pos, ch, phys, rng))
				continue
			}
			row[x] = terrainFor(ch)
		}
		lvl.grid[y] = row
	}

	for _, a := range lvl.actors {
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

// Width returns the level width in cells.
func (l *Level) Width() int { return l.width }

// Height returns the level height in cells.
func (l *Level) Height() int { return l.height }

// Cell returns the terrain at (x, y). Out-of-range cells are empty.
func (l *Level) Cell(x, y int) Kind {
	if y < 0 || y >= l.height || x < 0 || x >= l.width {
		return KindEmpty
	}
	return l.grid[y][x]
}

// Actors returns the live actors in update order. Callers must not modify it.
func (l *Level) Actors() []Actor { return l.actors }

// Player returns the player actor, or nil if the plan had none.
func (l *Level) Player() *Player {
	for _, a := range l.actors {
		if a.ID() == l.playerID {
			p, _ := a.(*Player)
			return p
		}
	}
	return nil
}

// Status returns the current win/loss state.
func (l *Level) Status() Status { return l.status }

// FinishDelay returns the remaining end-of-level countdown.
// It is only meaningful once Status is not StatusPlaying.
func (l *Level) FinishDelay() float64 { return l.finishDelay }

// IsFinished reports whether the level has ended and its countdown has
// dropped below zero.
func (l *Level) IsFinished() bool {
	return l.status != StatusPlaying && l.finishDelay < 0
}

// CoinsLeft returns the number of coins still in the level.
func (l *Level) CoinsLeft() int {
	n := 0
	for _, a := range l.actors {
		if a.Kind() == KindCoin {
			n++
		}
	}
	return n
}

// CoinsCollected returns how many coins have been picked up.
func (l *Level) CoinsCollected() int {
	return l.coinsTotal - l.CoinsLeft()
}

// ObstacleAt returns the terrain touched by the box at pos with the given
// size, or KindEmpty. Leaving the grid through the left, right or top edge
// is a wall; leaving through the bottom is lava. Edge checks run before the
// grid scan, and the grid is scanned row by row, so the first match wins.
func (l *Level) ObstacleAt(pos, size core.Vec) Kind {
	xStart, yStart, xEnd, yEnd := core.Box{Pos: pos, Size: size}.CellSpan()

	if xStart < 0 || xEnd > l.width || yStart < 0 {
		return KindWall
	}
	if yEnd > l.height {
		return KindLava
	}
	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if kind := l.grid[y][x]; kind != KindEmpty {
				return kind
			}
		}
	}
	return KindEmpty
}

// ActorAt returns the first actor, in list order, other than a whose box
// overlaps a's box. Touching edges do not count.
func (l *Level) ActorAt(a Actor) Actor {
	box := boxOf(a)
	for _, other := range l.actors {
		if other.ID() == a.ID() {
			continue
		}
		if box.Overlaps(boxOf(other)) {
			return other
		}
	}
	return nil
}

// Animate advances the level by step time units. The countdown drops once
// per call; physics runs in sub-steps no longer than Physics.MaxStep so large
// frame deltas cannot tunnel through walls.
func (l *Level) Animate(step float64, in core.InputFrame) {
	if l.status != StatusPlaying {
		l.finishDelay -= step
	}

	maxStep := l.phys.MaxStep
	if maxStep <= 0 {
		maxStep = 0.01
	}

	for step > 0 {
		sub := math.Min(step, maxStep)
		// Removal replaces l.actors, so this sub-step keeps its own view.
		actors := l.actors
		for _, a := range actors {
			a.Act(sub, l, in)
		}
		step -= sub
	}
}

// PlayerTouched handles the player touching terrain or an actor of the
// given kind. actor is the touched actor, or nil for terrain.
func (l *Level) PlayerTouched(kind Kind, actor Actor) {
	switch kind {
	case KindLava:
		if l.status == StatusPlaying {
			l.finish(StatusLost)
		}
	case KindCoin:
		if actor == nil {
			return
		}
		l.removeActor(actor.ID())
		if l.CoinsLeft() == 0 {
			l.finish(StatusWon)
		}
	}
}

func (l *Level) finish(status Status) {
	l.status = status
	l.finishDelay = l.phys.FinishDelay
}

// removeActor builds a new slice so an in-progress iteration over the old
// one is unaffected.
func (l *Level) removeActor(id ActorID) {
	kept := make([]Actor, 0, len(l.actors))
	for _, a := range l.actors {
		if a.ID() != id {
			kept = append(kept, a)
		}
	}
	l.actors = kept
}
