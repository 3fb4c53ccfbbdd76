package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - lateral hold backwards
	ActionRight          // Right arrow, D - lateral hold forwards
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionJump           // Space, Up - jump impulse (only when grounded)
	ActionStart          // Enter - start the run or retry a failed level
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after the run is complete
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// MaxPointers is the number of concurrent pointers (touches, mouse buttons)
// tracked per frame. Taps from additional pointers are dropped.
const MaxPointers = 3

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// Held actions (Left/Right) and discrete actions (Jump, Start) are sampled
// together so the frame can be evaluated deterministically.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointers holds the IDs of pointers that tapped this frame.
	Pointers []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Tap records a discrete tap from the given pointer.
// Returns false if the tap was dropped because MaxPointers distinct
// pointers already tapped this frame.
func (f *InputFrame) Tap(pointerID int) bool {
	for _, id := range f.Pointers {
		if id == pointerID {
			return true
		}
	}
	if len(f.Pointers) >= MaxPointers {
		return false
	}
	f.Pointers = append(f.Pointers, pointerID)
	return true
}

// Tapped returns true if any pointer tapped this frame.
func (f InputFrame) Tapped() bool {
	return len(f.Pointers) > 0
}

// Lateral resolves held lateral input into -1 (left), +1 (right) or 0.
// Left takes priority when both are held.
func (f InputFrame) Lateral() int {
	switch {
	case f.Has(ActionLeft):
		return -1
	case f.Has(ActionRight):
		return 1
	default:
		return 0
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointers) > 0 {
		clone.Pointers = append([]int(nil), f.Pointers...)
	}
	return clone
}
