package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Bindings maps each paddle action to the logical input code that triggers it.
type Bindings map[core.Action]string

// ControlBindings returns the key table for a control scheme. The schemes only
// differ in player 1's up key; player 2 always uses the arrow keys.
func ControlBindings(scheme config.ControlScheme) (Bindings, error) {
	var up string
	switch scheme {
	case config.SchemeAZERTY:
		up = "z"
	case config.SchemeQWERTY:
		up = "w"
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedScheme, scheme)
	}
	return Bindings{
		core.ActionP1Up:   up,
		core.ActionP1Down: "s",
		core.ActionP2Up:   core.KeyArrowUp,
		core.ActionP2Down: core.KeyArrowDown,
	}, nil
}

// Active reports whether the key bound to action is held. Letters match in
// either case.
func (b Bindings) Active(keys core.KeySet, action core.Action) bool {
	code, ok := b[action]
	if !ok {
		return false
	}
	return keys.PressedFold(code)
}

// Intents holds the movement request for each paddle.
type Intents struct {
	Left  Intent
	Right Intent
}

// Resolve turns a pressed-key snapshot into paddle intents. Player 2 keys are
// ignored outside multi mode. Holding both or neither direction resolves to
// no movement.
func Resolve(keys core.KeySet, b Bindings, mode Mode) Intents {
	in := Intents{
		Left: axis(b.Active(keys, core.ActionP1Up), b.Active(keys, core.ActionP1Down)),
	}
	if mode == ModeMulti {
		in.Right = axis(b.Active(keys, core.ActionP2Up), b.Active(keys, core.ActionP2Down))
	}
	return in
}

func axis(up, down bool) Intent {
	switch {
	case up && !down:
		return IntentUp
	case down && !up:
		return IntentDown
	default:
		return IntentNone
	}
}

// ControlsHint describes the keys of the given scheme for an on-screen legend.
func ControlsHint(scheme config.ControlScheme, mode Mode) string {
	p1 := "Z/S"
	if scheme == config.SchemeQWERTY {
		p1 = "W/S"
	}
	if mode == ModeMulti {
		return fmt.Sprintf("P1: %s | P2: ↑/↓ | Pause: P", p1)
	}
	return fmt.Sprintf("P1: %s | Pause: P", p1)
}
