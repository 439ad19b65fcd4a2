package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Actor is any dynamic entity in a level. Actors hold no reference to the
// level; it is passed to Act on every sub-step.
type Actor interface {
	ID() ActorID
	Kind() Kind
	Pos() core.Vec
	Size() core.Vec

	// Act advances the actor by step time units. It may query lvl for
	// obstacles and other actors and report touches back to it.
	Act(step float64, lvl *Level, in core.InputFrame)
}

// body carries the state every actor has.
type body struct {
	id   ActorID
	pos  core.Vec
	size core.Vec
}

func (b *body) ID() ActorID    { return b.id }
func (b *body) Pos() core.Vec  { return b.pos }
func (b *body) Size() core.Vec { return b.size }

// boxOf returns the bounding box of an actor.
func boxOf(a Actor) core.Box {
	return core.Box{Pos: a.Pos(), Size: a.Size()}
}
