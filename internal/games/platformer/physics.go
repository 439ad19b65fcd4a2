package platformer

import "github.com/vovakirdan/tui-platformer/internal/config"

// Physics holds the tunables shared by the level and its actors.
type Physics struct {
	Gravity     float64 // Downward acceleration on the player
	JumpSpeed   float64 // Upward speed applied on a jump
	RunSpeed    float64 // Horizontal player speed
	LavaSpeed   float64 // Shuttle speed for '=' and '|'
	DripSpeed   float64 // Fall speed for 'v'
	WobbleSpeed float64 // Coin wobble angular speed
	WobbleDist  float64 // Coin wobble amplitude
	MaxStep     float64 // Longest physics sub-step
	FinishDelay float64 // Countdown after a win or loss
}

// DefaultPhysics returns the classic tuning.
func DefaultPhysics() Physics {
	return PhysicsFromConfig(config.DefaultPlatformerConfig())
}

// PhysicsFromConfig extracts simulation parameters from a loaded config.
func PhysicsFromConfig(cfg config.PlatformerConfig) Physics {
	return Physics{
		Gravity:     cfg.Physics.Gravity,
		JumpSpeed:   cfg.Physics.JumpSpeed,
		RunSpeed:    cfg.Physics.RunSpeed,
		LavaSpeed:   cfg.Actors.LavaSpeed,
		DripSpeed:   cfg.Actors.DripSpeed,
		WobbleSpeed: cfg.Actors.WobbleSpeed,
		WobbleDist:  cfg.Actors.WobbleDist,
		MaxStep:     cfg.Physics.MaxStep,
		FinishDelay: cfg.Gameplay.FinishDelay,
	}
}
