package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Player is the character controlled by the input frame.
type Player struct {
	body
	speed core.Vec
}

func newPlayer(id ActorID, spawn core.Vec) *Player {
	return &Player{
		body: body{
			id:   id,
			pos:  spawn.Plus(core.V(0, -0.5)),
			size: core.V(0.8, 1.5),
		},
	}
}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind { return KindPlayer }

// Speed returns the current velocity.
func (p *Player) Speed() core.Vec { return p.speed }

// Act moves the player horizontally then vertically, reports any actor it
// overlaps, and plays the sinking animation once the level is lost.
func (p *Player) Act(step float64, lvl *Level, in core.InputFrame) {
	p.moveX(step, lvl, in)
	p.moveY(step, lvl, in)

	if other := lvl.ActorAt(p); other != nil {
		lvl.PlayerTouched(other.Kind(), other)
	}

	if lvl.Status() == StatusLost {
		p.pos.Y += step
		p.size.Y = core.ClampF(p.size.Y-step, 0, p.size.Y)
	}
}

func (p *Player) moveX(step float64, lvl *Level, in core.InputFrame) {
	p.speed.X = 0
	// Left wins when both are held
	if in.Has(core.ActionLeft) {
		p.speed.X -= lvl.phys.RunSpeed
	} else if in.Has(core.ActionRight) {
		p.speed.X += lvl.phys.RunSpeed
	}

	newPos := p.pos.Plus(core.V(p.speed.X*step, 0))
	if obstacle := lvl.ObstacleAt(newPos, p.size); obstacle != KindEmpty {
		lvl.PlayerTouched(obstacle, nil)
		return
	}
	p.pos = newPos
}

func (p *Player) moveY(step float64, lvl *Level, in core.InputFrame) {
	p.speed.Y += step * lvl.phys.Gravity

	newPos := p.pos.Plus(core.V(0, p.speed.Y*step))
	obstacle := lvl.ObstacleAt(newPos, p.size)
	if obstacle == KindEmpty {
		p.pos = newPos
		return
	}

	lvl.PlayerTouched(obstacle, nil)
	// Jumping is only possible while landing
	if in.Has(core.ActionUp) && p.speed.Y > 0 {
		p.speed.Y = -lvl.phys.JumpSpeed
	} else {
		p.speed.Y = 0
	}
}
