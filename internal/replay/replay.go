// Package replay drives a platformer level headlessly from a scripted list
// of held keys. Scripts are YAML files; a run is fully deterministic for a
// given plan, seed and script.
package replay

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// DefaultDT is the frame time used by steps that do not set one.
const DefaultDT = 1.0 / 60

// DefaultMaxFrame caps the frame time of a single step when Run is given no
// clamp, matching the default interactive game loop.
const DefaultMaxFrame = 0.1

// Step holds a set of keys for a number of frames.
type Step struct {
	Frames int      `yaml:"frames"`
	DT     float64  `yaml:"dt,omitempty"`
	Keys   []string `yaml:"keys,omitempty"`
}

// Script is the YAML structure of a replay file.
type Script struct {
	Level int      `yaml:"level"`          // Index into the level list
	Seed  int64    `yaml:"seed"`           // Coin wobble seed
	Plan  []string `yaml:"plan,omitempty"` // Inline plan; overrides Level
	Steps []Step   `yaml:"steps"`
}

// Result summarizes a run.
type Result struct {
	Status    platformer.Status
	Finished  bool // Level countdown expired before the script ended
	Frames    int
	Elapsed   float64
	CoinsLeft int
}

// ParseScript decodes and validates a replay script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("replay: yaml unmarshal: %w", err)
	}
	if len(s.Steps) == 0 {
		return Script{}, errors.New("replay: script has no steps")
	}
	for i, st := range s.Steps {
		if st.Frames <= 0 {
			return Script{}, fmt.Errorf("replay: step %d: frames must be positive", i)
		}
		if st.DT < 0 {
			return Script{}, fmt.Errorf("replay: step %d: negative dt", i)
		}
		for _, k := range st.Keys {
			if core.ParseAction(k) == core.ActionNone {
				return Script{}, fmt.Errorf("replay: step %d: unknown key %q", i, k)
			}
		}
	}
	return s, nil
}

// LoadScript reads and parses a replay file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: read %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// TotalFrames returns the number of frames the script spans.
func (s Script) TotalFrames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Frames
	}
	return n
}

// NewLevel builds the level the script runs on: its inline plan if it has
// one, otherwise plans[Level].
func (s Script) NewLevel(plans []platformer.Plan, phys platformer.Physics) (*platformer.Level, error) {
	plan := platformer.Plan(s.Plan)
	if len(plan) == 0 {
		if s.Level < 0 || s.Level >= len(plans) {
			return nil, fmt.Errorf("replay: level %d out of range [0, %d)", s.Level, len(plans))
		}
		plan = plans[s.Level]
	}
	return platformer.NewLevel(plan, phys, rand.New(rand.NewSource(s.Seed))), nil
}

// Run plays the script against lvl and stops early once the level is
// finished. Step frame times are clamped to maxFrame; a non-positive
// maxFrame uses DefaultMaxFrame.
func Run(lvl *platformer.Level, s Script, maxFrame float64) Result {
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	var res Result
	for _, st := range s.Steps {
		dt := st.DT
		if dt == 0 {
			dt = DefaultDT
		}
		dt = core.ClampF(dt, 0, maxFrame)
		in := inputOf(st.Keys)

		for i := 0; i < st.Frames; i++ {
			lvl.Animate(dt, in)
			res.Frames++
			res.Elapsed += dt
			if lvl.IsFinished() {
				res.Finished = true
				return res.fill(lvl)
			}
		}
	}
	return res.fill(lvl)
}

func (r Result) fill(lvl *platformer.Level) Result {
	r.Status = lvl.Status()
	r.CoinsLeft = lvl.CoinsLeft()
	return r
}

func inputOf(keys []string) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Set(core.ParseAction(k))
	}
	return in
}
