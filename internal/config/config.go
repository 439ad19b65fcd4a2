// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics  PlatformerPhysics  `yaml:"physics"`
	Actors   PlatformerActors   `yaml:"actors"`
	Gameplay PlatformerGameplay `yaml:"gameplay"`
	Display  PlatformerDisplay  `yaml:"display"`
}

// PlatformerPhysics defines player physics and time stepping.
type PlatformerPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"`
	RunSpeed  float64 `yaml:"run_speed"`
	MaxStep   float64 `yaml:"max_step"`  // Longest sub-step
	MaxFrame  float64 `yaml:"max_frame"` // Frame delta clamp
}

// PlatformerActors defines hazard and coin motion parameters.
type PlatformerActors struct {
	LavaSpeed   float64 `yaml:"lava_speed"`
	DripSpeed   float64 `yaml:"drip_speed"`
	WobbleSpeed float64 `yaml:"wobble_speed"`
	WobbleDist  float64 `yaml:"wobble_dist"`
}

// PlatformerGameplay defines lives and level-end timing.
type PlatformerGameplay struct {
	Lives       int     `yaml:"lives"`
	FinishDelay float64 `yaml:"finish_delay"`
}

// PlatformerDisplay defines terminal rendering and input parameters.
type PlatformerDisplay struct {
	Scale  int `yaml:"scale"`   // Columns per level unit
	HoldMS int `yaml:"hold_ms"` // Key hold window in milliseconds
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown strings return ""
// which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyNormal:
		cfg.Gameplay.Lives = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 1
		cfg.Actors.LavaSpeed *= 1.5
		cfg.Actors.DripSpeed *= 1.5
	}
}
