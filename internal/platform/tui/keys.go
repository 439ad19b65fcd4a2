package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press or autorepeat.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyTracker turns key presses into held state. Terminals send no release
// events, so a movement key stays down until the hold window passes without
// another autorepeat. Other actions fire once on the next frame.
type KeyTracker struct {
	hold    time.Duration
	held    map[core.Action]time.Time // Last press per movement action
	pending []core.Action             // One-shot actions for the next frame
}

// NewKeyTracker creates a tracker with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyTracker{
		hold: hold,
		held: make(map[core.Action]time.Time),
	}
}

// Hold returns the hold window.
func (t *KeyTracker) Hold() time.Duration { return t.hold }

// Press records a key press at now.
func (t *KeyTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		delete(t.held, core.ActionRight)
		t.held[a] = now
	case core.ActionRight:
		delete(t.held, core.ActionLeft)
		t.held[a] = now
	case core.ActionUp:
		t.held[a] = now
	default:
		t.pending = append(t.pending, a)
	}
}

// Frame returns the actions active at now and consumes one-shot actions.
// Expired holds are dropped.
func (t *KeyTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, at := range t.held {
		if now.Sub(at) > t.hold {
			delete(t.held, a)
			continue
		}
		in.Set(a)
	}
	for _, a := range t.pending {
		in.Set(a)
	}
	t.pending = t.pending[:0]
	return in
}

// Reset releases every key.
func (t *KeyTracker) Reset() {
	clear(t.held)
	t.pending = t.pending[:0]
}
