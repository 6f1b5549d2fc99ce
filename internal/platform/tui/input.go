package tui

import "github.com/velikanov/cliffhop/internal/core"

// Terminals report key repeats, never key releases, so "is left held" cannot
// be read directly from key events. HoldTracker reconstructs held state by
// giving every directional press a short time-to-live that each repeat
// refreshes; when the repeats stop, the hold expires. Trigger actions (jump,
// dash, pause, restart) are latched instead and fire on exactly one frame.
type HoldTracker struct {
	holdTicks int
	held      map[core.Action]int
	latched   map[core.Action]bool
}

// NewHoldTracker creates a tracker tuned for the given tick rate. The hold
// window must outlast the terminal's key repeat delay or held directions
// stutter between the first press and the first repeat.
func NewHoldTracker(tickRate int) *HoldTracker {
	holdTicks := tickRate / 3
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		latched:   make(map[core.Action]bool),
	}
}

// Press records a key event for the given action.
func (h *HoldTracker) Press(action core.Action) {
	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		h.held[action] = h.holdTicks
	default:
		h.latched[action] = true
	}
}

// Frame builds the input frame for one simulation tick, aging the holds and
// consuming the latched triggers.
func (h *HoldTracker) Frame() core.InputFrame {
	in := core.NewInputFrame()

	for action, ttl := range h.held {
		if ttl <= 0 {
			delete(h.held, action)
			continue
		}
		in.Set(action)
		h.held[action] = ttl - 1
	}

	for action := range h.latched {
		in.Set(action)
		delete(h.latched, action)
	}

	return in
}

// Reset drops all tracked state, for use when a new run starts.
func (h *HoldTracker) Reset() {
	h.held = make(map[core.Action]int)
	h.latched = make(map[core.Action]bool)
}
