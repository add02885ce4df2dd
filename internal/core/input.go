package core

import "github.com/vovakirdan/gridsnake/internal/grid"

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends translate their raw input (keys, swipes) into actions and then
// into engine calls.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // R key - restart the game
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a steering action.
// The second result is false for every other action.
func (a Action) Direction() (grid.Direction, bool) {
	switch a {
	case ActionUp:
		return grid.DirUp, true
	case ActionDown:
		return grid.DirDown, true
	case ActionLeft:
		return grid.DirLeft, true
	case ActionRight:
		return grid.DirRight, true
	}
	return 0, false
}

// Swipe converts a pointer displacement into a steering action by comparing
// horizontal and vertical distance. Zero displacement yields ActionNone.
func Swipe(dx, dy int) Action {
	switch {
	case dx == 0 && dy == 0:
		return ActionNone
	case abs(dx) > abs(dy):
		if dx > 0 {
			return ActionRight
		}
		return ActionLeft
	default:
		if dy > 0 {
			return ActionDown
		}
		return ActionUp
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
