package platformer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Coin bobs up and down around its base position. The wobble is cosmetic;
// coins are never checked against obstacles.
type Coin struct {
	body
	basePos core.Vec
	wobble  float64
}

func newCoin(id ActorID, spawn core.Vec, rng *rand.Rand) *Coin {
	base := spawn.Plus(core.V(0.2, 0.1))
	return &Coin{
		body:    body{id: id, pos: base, size: core.V(0.6, 0.6)},
		basePos: base,
		wobble:  rng.Float64() * math.Pi * 2,
	}
}

// Kind returns KindCoin.
func (c *Coin) Kind() Kind { return KindCoin }

// Act advances the wobble phase.
func (c *Coin) Act(step float64, lvl *Level, _ core.InputFrame) {
	c.wobble += step * lvl.phys.WobbleSpeed
	offset := math.Sin(c.wobble) * lvl.phys.WobbleDist
	c.pos = c.basePos.Plus(core.V(0, offset))
}
