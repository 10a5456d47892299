package config

import (
	"fmt"
	"strings"
)

// Difficulty names an AI opponent profile.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyHard       Difficulty = "hard"
	DifficultyImpossible Difficulty = "impossible"
)

// Difficulties lists the profiles in menu order.
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyImpossible,
}

// AIProfile tunes the CPU paddle.
type AIProfile struct {
	SpeedFactor      float64 // Fraction of the configured paddle speed
	PredictionFactor float64 // How far along the ball path the AI looks (0..1)
	ReactionDelay    float64 // Chance to sit out a tick; 0 always reacts
}

// AIProfiles is the fixed difficulty lookup table.
var AIProfiles = map[Difficulty]AIProfile{
	DifficultyEasy:       {SpeedFactor: 0.4, PredictionFactor: 0.3, ReactionDelay: 0.6},
	DifficultyMedium:     {SpeedFactor: 0.6, PredictionFactor: 0.5, ReactionDelay: 0.4},
	DifficultyHard:       {SpeedFactor: 0.8, PredictionFactor: 0.7, ReactionDelay: 0.2},
	DifficultyImpossible: {SpeedFactor: 1.0, PredictionFactor: 1.0, ReactionDelay: 0.0},
}

// ParseDifficulty converts a name to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := AIProfiles[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDifficulty, name)
	}
	return d, nil
}

// Profile returns the AI profile for the difficulty.
// Unknown values report ok=false.
func (d Difficulty) Profile() (AIProfile, bool) {
	p, ok := AIProfiles[d]
	return p, ok
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	for i, candidate := range Difficulties {
		if candidate == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return DifficultyMedium
}

// Prev returns the preceding difficulty, wrapping around.
func (d Difficulty) Prev() Difficulty {
	for i, candidate := range Difficulties {
		if candidate == d {
			return Difficulties[(i+len(Difficulties)-1)%len(Difficulties)]
		}
	}
	return DifficultyMedium
}
