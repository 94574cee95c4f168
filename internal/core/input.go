package core

// Action represents a semantic input, abstracted from physical key presses.
// The platform maps keys to actions; the simulation only ever sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionPause        // P, Escape - handled by the driver
	ActionQuit         // Q, Ctrl+C - handled by the driver
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
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a directional action to a movement direction.
// The second result is false for actions that do not steer.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}
