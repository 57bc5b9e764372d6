package core

// Action represents a semantic game action, abstracted from physical
// key presses. The platform's key mapper decodes raw input into these
// before the simulation ever sees it.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Shift the falling piece one column left
	ActionMoveRight        // Shift the falling piece one column right
	ActionHardDrop         // Drop the falling piece to the lowest legal row
	ActionRotateCW         // Rotate the falling piece +90°
	ActionRotateCCW        // Rotate the falling piece -90°
	ActionUp               // Title menu cursor up
	ActionDown             // Title menu cursor down
	ActionConfirm          // Submit the current menu entry
	ActionBack             // Leave a pushed screen (Settings/Infos)
	ActionQuit             // Exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this
	// frame. A map allows checking multiple actions without order
	// dependency.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
