package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// DeadZone is the distance from the target at which the CPU stops moving.
const DeadZone = 10.0

// minTrackedVX is the horizontal speed below which no prediction is made.
const minTrackedVX = 1e-9

// Intent is a paddle movement request for one tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	default:
		return "none"
	}
}

// Sign returns -1 for up, +1 for down and 0 otherwise (screen coordinates).
func (i Intent) Sign() float64 {
	switch i {
	case IntentUp:
		return -1
	case IntentDown:
		return 1
	default:
		return 0
	}
}

// Decision is the CPU's move for one tick.
type Decision struct {
	Intent  Intent
	Amount  float64 // Distance to move this tick
	Target  float64 // Predicted y the CPU is aiming its centre at
	Skipped bool    // Reaction roll failed; the CPU sat this tick out
}

// AI drives the right paddle in solo mode.
type AI struct {
	rng *rand.Rand
}

// NewAI creates a CPU opponent that draws its reaction rolls from rng.
func NewAI(rng *rand.Rand) *AI {
	return &AI{rng: rng}
}

// Decide returns the CPU move for this tick. Exactly one reaction roll is
// drawn per call so that a seeded match replays identically.
func (ai *AI) Decide(b Ball, p Paddle, profile config.AIProfile, paddleSpeed float64) Decision {
	return decide(ai.rng.Float64(), b, p, profile, paddleSpeed)
}

func decide(roll float64, b Ball, p Paddle, profile config.AIProfile, paddleSpeed float64) Decision {
	d := Decision{Target: PredictTarget(b, p, profile.PredictionFactor)}

	if roll < profile.ReactionDelay {
		d.Skipped = true
		return d
	}

	diff := d.Target - p.CenterY()
	if math.Abs(diff) <= DeadZone {
		return d
	}

	d.Amount = paddleSpeed * profile.SpeedFactor
	if diff > 0 {
		d.Intent = IntentDown
	} else {
		d.Intent = IntentUp
	}
	return d
}

// PredictTarget estimates where the ball will be when it reaches the paddle's
// x, scaled by the prediction factor. A ball moving away (or barely moving
// horizontally) is tracked at its current height.
func PredictTarget(b Ball, p Paddle, prediction float64) float64 {
	if b.VX < minTrackedVX {
		return b.Y
	}
	timeToReach := (p.X - b.X) / b.VX
	return b.Y + b.VY*timeToReach*prediction
}
