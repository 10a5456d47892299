package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the hardcoded Pong settings.
func Default() Settings {
	return Settings{
		Difficulty:    DifficultyMedium,
		BallSpeed:     5,
		MaxBallSpeed:  15,
		PaddleSpeed:   8,
		WinScore:      11,
		ControlScheme: SchemeAZERTY,
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
