// Package levels loads platformer level packs from YAML files.
// This package has no dependency on the simulation; it hands plans over as
// plain string slices.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validation errors reported by Validate.
var (
	ErrEmptyPlan   = errors.New("plan has no rows")
	ErrRaggedPlan  = errors.New("plan rows have different lengths")
	ErrNoPlayer    = errors.New("plan has no player spawn '@'")
	ErrManyPlayers = errors.New("plan has more than one player spawn '@'")
)

// File is the YAML structure of a level file.
type File struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Order int      `yaml:"order,omitempty"`
	Plan  []string `yaml:"plan"`
}

// Level is a parsed, validated level definition.
type Level struct {
	ID       string
	Name     string
	Order    int
	Plan     []string
	FilePath string
}

// Parse decodes and validates a YAML level file.
func Parse(data []byte) (Level, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if f.ID == "" {
		return Level{}, errors.New("level has no id")
	}
	if err := Validate(f.Plan); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", f.ID, err)
	}

	name := f.Name
	if name == "" {
		name = f.ID
	}
	return Level{
		ID:    f.ID,
		Name:  name,
		Order: f.Order,
		Plan:  f.Plan,
	}, nil
}

// Validate checks that a plan is rectangular and has exactly one player spawn.
// The simulation assumes both; files are the only place they get checked.
func Validate(plan []string) error {
	if len(plan) == 0 {
		return ErrEmptyPlan
	}
	width := len(plan[0])
	players := 0
	for y, row := range plan {
		if len(row) != width {
			return fmt.Errorf("%w: row %d is %d wide, expected %d", ErrRaggedPlan, y, len(row), width)
		}
		players += strings.Count(row, "@")
	}
	switch {
	case players == 0:
		return ErrNoPlayer
	case players > 1:
		return fmt.Errorf("%w: found %d", ErrManyPlayers, players)
	}
	return nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
