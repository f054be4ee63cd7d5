package core

// Action represents a semantic game action, abstracted from physical key presses.
// Directions are level triggered: a frontend sets them for every tick the key
// is held, the simulation decides when a new hop may begin.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - hop up
	ActionDown            // S, Down arrow - hop down
	ActionLeft            // A, Left arrow - hop left
	ActionRight           // D, Right arrow - hop right
	ActionStart           // S - start from the title screen
	ActionContinue        // C - continue after a death or capture
	ActionPause           // P, Escape - pause/unpause
	ActionRestart         // R - restart after the game is complete
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionContinue:
		return "Continue"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered or held during this frame.
type InputFrame struct {
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
