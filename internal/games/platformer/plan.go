package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Plan is the ASCII source of a level: equal-length rows where
//
//	' ' = empty
//	'x' = wall
//	'!' = static lava
//	'@' = player spawn (exactly one)
//	'o' = coin
//	'=' = lava moving horizontally
//	'|' = lava moving vertically
//	'v' = dripping lava
type Plan []string

// actorFactory constructs an actor spawned from a plan character at pos.
type actorFactory func(id ActorID, pos core.Vec, ch byte, phys Physics, rng *rand.Rand) Actor

// actorChars is the closed table of characters that spawn actors.
var actorChars = map[byte]actorFactory{
	'@': func(id ActorID, pos core.Vec, _ byte, _ Physics, _ *rand.Rand) Actor {
		return newPlayer(id, pos)
	},
	'o': func(id ActorID, pos core.Vec, _ byte, _ Physics, rng *rand.Rand) Actor {
		return newCoin(id, pos, rng)
	},
	'=': newLavaActor,
	'|': newLavaActor,
	'v': newLavaActor,
}

func newLavaActor(id ActorID, pos core.Vec, ch byte, phys Physics, _ *rand.Rand) Actor {
	return newLava(id, pos, ch, phys)
}

// terrainFor classifies a non-actor plan character.
func terrainFor(ch byte) Kind {
	switch ch {
	case 'x':
		return KindWall
	case '!':
		return KindLava
	default:
		return KindEmpty
	}
}

// BuiltinPlans returns the three stock levels, easiest first.
func BuiltinPlans() []Plan {
	return []Plan{
		{
			"            |        |             ",
			"                                   ",
			"                                   ",
			"                o                  ",
			"                x       x          ",
			"        o       x       x          ",
			"  @    xxx      x       x      o   ",
			"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		},
		{
			"                                           v                 xxxxxxx      ",
			"     @                                                       v     x      ",
			"                                                                   x      ",
			"  xxx                                               o              x      ",
			"  x              = xxx                           xxxxx             x      ",
			"  x         o o    x           x                                   x      ",
			"  x        xxxxx   x           x         o                      o  x      ",
			"  xxxxx            x     xx    x        xxxx              xxxxxxxxxx      ",
			"      x!!!!!!!!!!!!x           x                                          ",
			"      xxxxxxxxxxxxxx!!!!!!!!!!!xxxxxx!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!  ",
			"                                                                          ",
			"                                                                          ",
		},
		{
			"x                                                                          ",
			"x                                                                          ",
			"x                                                                          ",
			"x                                                                          ",
			"x                                                                          ",
			"x                                    o  o                              o   ",
			"x                                   xxxxxx                         =xxxxxxx",
			"x                                     |        xxx=                        ",
			"x                                                                          ",
			"x                 xx       o                              xxxxxx           ",
			"x                        xxxxxx       o             o                      ",
			"x                                     xx      xxxxxxx                      ",
			"x             o  o                                                         ",
			"x            =xxxxx                                                        ",
			"x                                       o                                  ",
			"x@                                    xxxxx                                ",
			"xx                                                                         ",
			"!!!!!!!xxxxxxxxxxxx!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!",
		},
	}
}

// BuiltinNames returns display names for BuiltinPlans, index-aligned.
func BuiltinNames() []string {
	return []string{"Warm Up", "Lava Lake", "Long Drop"}
}
