package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:   35,
			JumpSpeed: 17,
			RunSpeed:  7,
			MaxStep:   0.01,
			MaxFrame:  0.1,
		},
		Actors: PlatformerActors{
			LavaSpeed:   2,
			DripSpeed:   3,
			WobbleSpeed: 8,
			WobbleDist:  0.15,
		},
		Gameplay: PlatformerGameplay{
			Lives:       3,
			FinishDelay: 1,
		},
		Display: PlatformerDisplay{
			Scale:  2,
			HoldMS: 150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
