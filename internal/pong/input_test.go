package pong

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		scheme config.ControlScheme
		mode   Mode
		keys   []string
		left   Intent
		right  Intent
	}{
		{"azerty up", config.SchemeAZERTY, ModeSolo, []string{"z"}, IntentUp, IntentNone},
		{"azerty upper case", config.SchemeAZERTY, ModeSolo, []string{"Z"}, IntentUp, IntentNone},
		{"azerty ignores w", config.SchemeAZERTY, ModeSolo, []string{"w"}, IntentNone, IntentNone},
		{"qwerty up", config.SchemeQWERTY, ModeSolo, []string{"W"}, IntentUp, IntentNone},
		{"qwerty ignores z", config.SchemeQWERTY, ModeSolo, []string{"z"}, IntentNone, IntentNone},
		{"down upper case", config.SchemeQWERTY, ModeSolo, []string{"S"}, IntentDown, IntentNone},
		{"both pressed", config.SchemeAZERTY, ModeSolo, []string{"z", "s"}, IntentNone, IntentNone},
		{"nothing pressed", config.SchemeAZERTY, ModeMulti, nil, IntentNone, IntentNone},
		{"arrows ignored in solo", config.SchemeAZERTY, ModeSolo, []string{core.KeyArrowUp}, IntentNone, IntentNone},
		{"arrows in multi", config.SchemeAZERTY, ModeMulti, []string{core.KeyArrowDown, "z"}, IntentUp, IntentDown},
		{"both arrows", config.SchemeAZERTY, ModeMulti, []string{core.KeyArrowUp, core.KeyArrowDown}, IntentNone, IntentNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ControlBindings(tc.scheme)
			if err != nil {
				t.Fatalf("ControlBindings() failed: %v", err)
			}
			got := Resolve(core.NewKeySet(tc.keys...), b, tc.mode)
			if got.Left != tc.left || got.Right != tc.right {
				t.Errorf("Resolve() = %+v, expected left=%v right=%v", got, tc.left, tc.right)
			}
		})
	}
}

func TestControlBindingsRejectsUnknownScheme(t *testing.T) {
	_, err := ControlBindings("dvorak")
	if !errors.Is(err, config.ErrUnsupportedScheme) {
		t.Errorf("error = %v, expected ErrUnsupportedScheme", err)
	}
}

func TestControlsHint(t *testing.T) {
	tests := []struct {
		scheme   config.ControlScheme
		mode     Mode
		expected string
	}{
		{config.SchemeAZERTY, ModeSolo, "P1: Z/S | Pause: P"},
		{config.SchemeQWERTY, ModeSolo, "P1: W/S | Pause: P"},
		{config.SchemeQWERTY, ModeMulti, "P1: W/S | P2: ↑/↓ | Pause: P"},
	}

	for _, tc := range tests {
		if got := ControlsHint(tc.scheme, tc.mode); got != tc.expected {
			t.Errorf("ControlsHint(%s, %s) = %q, expected %q", tc.scheme, tc.mode, got, tc.expected)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"solo", ModeSolo, false},
		{" Multi ", ModeMulti, false},
		{"online", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnsupportedMode) {
				t.Errorf("ParseMode(%q) error = %v, expected ErrUnsupportedMode", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseMode(%q) = %q, %v; expected %q", tc.in, got, err, tc.want)
		}
	}
}
