package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow - move piece left
	ActionRight              // Right arrow - move piece right
	ActionDown               // Down arrow - soft drop one row
	ActionDrop               // Space - hard drop
	ActionRotateRight        // Up arrow - rotate clockwise
	ActionRotateLeft         // Q - rotate counter-clockwise
	ActionStart              // Enter - start a game / start over after game over
	ActionPause              // P - pause/unpause game
	ActionQuit               // Esc - end the running game, or leave when not playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionDrop:
		return "Drop"
	case ActionRotateRight:
		return "RotateRight"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input for a single simulation tick.
// Actions keep the order in which keys arrived so that, for example,
// "rotate then move" and "move then rotate" stay distinguishable.
type InputFrame struct {
	Actions []Action

	// Elapsed is the monotonic time that passed since the previous frame.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions and the elapsed time for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Elapsed: f.Elapsed}
	clone.Actions = append(clone.Actions, f.Actions...)
	return clone
}
