// Package config provides YAML-based game settings, their bounds, and the
// fixed AI difficulty profiles for Pong.
package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedDifficulty is returned for an unknown difficulty name.
	ErrUnsupportedDifficulty = errors.New("config: unsupported difficulty")

	// ErrUnsupportedScheme is returned for an unknown control scheme name.
	ErrUnsupportedScheme = errors.New("config: unsupported control scheme")
)

// Settings contains every tunable parameter of a Pong match.
type Settings struct {
	Difficulty    Difficulty    `yaml:"difficulty"`
	BallSpeed     float64       `yaml:"ball_speed"`     // Speed after every serve
	MaxBallSpeed  float64       `yaml:"max_ball_speed"` // Cap for the per-hit ramp
	PaddleSpeed   float64       `yaml:"paddle_speed"`   // Units per tick
	WinScore      int           `yaml:"win_score"`
	ControlScheme ControlScheme `yaml:"control_scheme"`
}

// Bounds exposed by the settings panel. Values outside are clamped.
const (
	MinBallSpeed      = 1.0
	MaxBallSpeedLimit = 30.0
	MaxBaseBallSpeed  = 15.0
	MinPaddleSpeed    = 1.0
	MaxPaddleSpeed    = 20.0
	MinWinScore       = 1
	MaxWinScore       = 99
)

// ControlScheme selects the physical keys used by player 1.
type ControlScheme string

const (
	SchemeAZERTY ControlScheme = "azerty"
	SchemeQWERTY ControlScheme = "qwerty"
)

// ParseControlScheme converts a name to a ControlScheme.
func ParseControlScheme(name string) (ControlScheme, error) {
	s := ControlScheme(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case SchemeAZERTY, SchemeQWERTY:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
}

// Next returns the other scheme (menu cycling).
func (s ControlScheme) Next() ControlScheme {
	if s == SchemeAZERTY {
		return SchemeQWERTY
	}
	return SchemeAZERTY
}

// Validate reports enum values the core cannot guess a safe default for.
func (s Settings) Validate() error {
	if _, err := ParseDifficulty(string(s.Difficulty)); err != nil {
		return err
	}
	if _, err := ParseControlScheme(string(s.ControlScheme)); err != nil {
		return err
	}
	return nil
}

// Sanitize clamps every numeric field into its bounds and stores enum names
// in their canonical lower-case form. Non-positive speeds and scores become
// the minimum, never zero. Unknown enum values are left for Validate.
func (s Settings) Sanitize() Settings {
	if d, err := ParseDifficulty(string(s.Difficulty)); err == nil {
		s.Difficulty = d
	}
	if cs, err := ParseControlScheme(string(s.ControlScheme)); err == nil {
		s.ControlScheme = cs
	}
	s.BallSpeed = clampF(s.BallSpeed, MinBallSpeed, MaxBaseBallSpeed)
	s.MaxBallSpeed = clampF(s.MaxBallSpeed, s.BallSpeed, MaxBallSpeedLimit)
	s.PaddleSpeed = clampF(s.PaddleSpeed, MinPaddleSpeed, MaxPaddleSpeed)
	if s.WinScore < MinWinScore {
		s.WinScore = MinWinScore
	}
	if s.WinScore > MaxWinScore {
		s.WinScore = MaxWinScore
	}
	return s
}

// clampF restricts a float64 to [min, max]. NaN maps to min.
func clampF(val, min, max float64) float64 {
	if !(val >= min) {
		return min
	}
	if val > max {
		return max
	}
	return val
}
