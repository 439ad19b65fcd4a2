// Package platformer implements a tile-based platformer: a level parsed from
// an ASCII plan, a player under gravity, moving lava and coins to collect.
// The simulation has no terminal dependency; rendering goes through core.Screen.
package platformer

// Kind classifies both terrain cells and actors. Touch reports carry a Kind
// regardless of whether the player hit a cell or an actor.
type Kind string

const (
	KindEmpty  Kind = ""
	KindWall   Kind = "wall"
	KindLava   Kind = "lava"
	KindPlayer Kind = "player"
	KindCoin   Kind = "coin"
)

// Status is the win/loss state of a level.
type Status int

const (
	StatusPlaying Status = iota // No outcome yet
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ActorID identifies an actor within one level. IDs are assigned in spawn
// order starting at 1 and are never reused.
type ActorID int
