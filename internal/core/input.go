package core

// Action represents a semantic input intent, abstracted from physical keys
// and pointer taps.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow, H
	ActionUp             // W, Up arrow, K
	ActionRight          // D, Right arrow, L
	ActionDown           // S, Down arrow, J
	ActionConfirm        // Enter, Space
	ActionBack           // Esc, B
	ActionPause          // P
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a movement intent to its Direction. Every input source
// resolves through here, so the simulator never sees raw events.
func (a Action) Direction() Direction {
	switch a {
	case ActionLeft:
		return DirLeft
	case ActionUp:
		return DirUp
	case ActionRight:
		return DirRight
	case ActionDown:
		return DirDown
	default:
		return DirNone
	}
}

// ActionFor returns the movement intent for a direction.
func ActionFor(d Direction) Action {
	switch d {
	case DirLeft:
		return ActionLeft
	case DirUp:
		return ActionUp
	case DirRight:
		return ActionRight
	case DirDown:
		return ActionDown
	default:
		return ActionNone
	}
}
