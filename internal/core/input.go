package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionP1Up           // Z or W depending on the control scheme
	ActionP1Down         // S
	ActionP2Up           // Up arrow, two-player mode only
	ActionP2Down         // Down arrow, two-player mode only
	ActionPause          // P, Escape - pause/resume the match
	ActionRestart        // R - play again after match over
	ActionBack           // B - back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionP1Up:
		return "P1Up"
	case ActionP1Down:
		return "P1Down"
	case ActionP2Up:
		return "P2Up"
	case ActionP2Down:
		return "P2Down"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Logical input codes for non-letter keys.
const (
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// KeySet is the set of logical input codes held down during one tick.
// The zero value is an empty set.
type KeySet map[string]bool

// NewKeySet creates a set with the given codes pressed.
func NewKeySet(codes ...string) KeySet {
	k := make(KeySet, len(codes))
	for _, c := range codes {
		k[c] = true
	}
	return k
}

// Press marks a code as held.
func (k KeySet) Press(code string) {
	k[code] = true
}

// Release marks a code as no longer held.
func (k KeySet) Release(code string) {
	delete(k, code)
}

// Pressed reports whether the exact code is held.
func (k KeySet) Pressed(code string) bool {
	return k[code]
}

// PressedFold reports whether code is held in any letter case.
func (k KeySet) PressedFold(code string) bool {
	if k[code] {
		return true
	}
	for held, on := range k {
		if on && strings.EqualFold(held, code) {
			return true
		}
	}
	return false
}

// Clone creates a copy of this set.
func (k KeySet) Clone() KeySet {
	clone := make(KeySet, len(k))
	for c, on := range k {
		if on {
			clone[c] = true
		}
	}
	return clone
}
