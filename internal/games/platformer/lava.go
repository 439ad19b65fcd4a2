package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Lava is a moving hazard. Shuttling lava bounces off obstacles; dripping
// lava jumps back to where it spawned.
type Lava struct {
	body
	speed     core.Vec
	repeatPos core.Vec
	drips     bool
}

func newLava(id ActorID, pos core.Vec, ch byte, phys Physics) *Lava {
	l := &Lava{
		body: body{id: id, pos: pos, size: core.V(1, 1)},
	}
	switch ch {
	case '=':
		l.speed = core.V(phys.LavaSpeed, 0)
	case '|':
		l.speed = core.V(0, phys.LavaSpeed)
	case 'v':
		l.speed = core.V(0, phys.DripSpeed)
		l.repeatPos = pos
		l.drips = true
	}
	return l
}

// Kind returns KindLava.
func (l *Lava) Kind() Kind { return KindLava }

// Speed returns the current velocity.
func (l *Lava) Speed() core.Vec { return l.speed }

// Drips reports whether this is dripping lava.
func (l *Lava) Drips() bool { return l.drips }

// Act moves the lava along its velocity, bouncing or resetting on obstacles.
// Lava never checks for the player; the player detects lava.
func (l *Lava) Act(step float64, lvl *Level, _ core.InputFrame) {
	newPos := l.pos.Plus(l.speed.Times(step))
	switch {
	case lvl.ObstacleAt(newPos, l.size) == KindEmpty:
		l.pos = newPos
	case l.drips:
		l.pos = l.repeatPos
	default:
		l.speed = l.speed.Times(-1)
	}
}
