package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Physics tuning constants.
const (
	SpeedIncrement = 0.3         // Added to the ball speed on every paddle hit
	MaxBounceAngle = math.Pi / 4 // Bounce angle at the very edge of a paddle
	ServeSpread    = math.Pi / 8 // Serve angle is uniform in [-ServeSpread, ServeSpread]
)

// Outcome reports what happened during one physics step.
type Outcome struct {
	PaddleHit Side // Paddle the ball bounced off, if any
	WallHit   bool
	Scored    bool
	Scorer    Side // Side awarded the point when Scored is set
}

// Engine advances the ball inside an arena.
type Engine struct {
	Arena Arena
}

// NewEngine creates an engine for the given arena.
func NewEngine(a Arena) Engine {
	return Engine{Arena: a}
}

// Advance moves the ball one tick and resolves wall and paddle collisions.
// It reports a point when the ball's leading edge leaves the arena but does
// not serve the next ball.
func (e Engine) Advance(b *Ball, left, right *Paddle) Outcome {
	var out Outcome

	b.X += b.VX
	b.Y += b.VY

	out.WallHit = e.bounceWalls(b)

	// The half of the arena the ball is in decides which paddle can be hit.
	p, side, direction := left, SideLeft, 1.0
	if b.X >= e.Arena.Width/2 {
		p, side, direction = right, SideRight, -1.0
	}

	// Only a ball travelling toward the paddle can hit it. Once it bounces the
	// velocity points away, so overlap on the following ticks is ignored.
	approaching := b.VX*direction < 0
	if approaching && b.Box().Intersects(p.Box()) {
		Bounce(b, p, direction)
		out.PaddleHit = side
	}

	switch {
	case b.X-b.Radius < 0:
		out.Scored, out.Scorer = true, SideRight
	case b.X+b.Radius > e.Arena.Width:
		out.Scored, out.Scorer = true, SideLeft
	}

	return out
}

// bounceWalls reflects the vertical velocity off the top and bottom walls.
// A ball already heading back into the arena is left alone.
func (e Engine) bounceWalls(b *Ball) bool {
	switch {
	case b.Y-b.Radius < 0 && b.VY < 0:
		b.VY = -b.VY
		b.Y = b.Radius
		return true
	case b.Y+b.Radius > e.Arena.Height && b.VY > 0:
		b.VY = -b.VY
		b.Y = e.Arena.Height - b.Radius
		return true
	}
	return false
}

// Bounce sends the ball back off paddle p. direction is +1 for the left
// paddle and -1 for the right one. The angle grows with the distance between
// the contact point and the paddle centre, and the speed ramps up by
// SpeedIncrement up to the ball's MaxSpeed.
func Bounce(b *Ball, p *Paddle, direction float64) {
	offset := (b.Y - p.CenterY()) / (p.Height / 2)
	angle := core.ClampF(offset, -1, 1) * MaxBounceAngle

	b.Speed = math.Min(b.Speed+SpeedIncrement, b.MaxSpeed)
	b.VX = direction * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
}

// ServeBall re-centres the ball and launches it at the given speed toward a
// random side, within ServeSpread of the horizontal.
func ServeBall(b *Ball, a Arena, speed, maxSpeed float64, rng *rand.Rand) {
	b.X = a.Width / 2
	b.Y = a.Height / 2
	b.MaxSpeed = maxSpeed
	b.Speed = math.Min(speed, maxSpeed)

	angle := rng.Float64()*2*ServeSpread - ServeSpread
	direction := 1.0
	if rng.Float64() < 0.5 {
		direction = -1
	}

	b.VX = direction * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
}

// LimitSpeed lowers the ball speed to maxSpeed, keeping its heading.
// Used when the max speed setting drops below the current speed mid-rally.
func LimitSpeed(b *Ball, maxSpeed float64) {
	b.MaxSpeed = maxSpeed
	if b.Speed <= maxSpeed {
		return
	}
	if b.Speed > 0 {
		scale := maxSpeed / b.Speed
		b.VX *= scale
		b.VY *= scale
	}
	b.Speed = maxSpeed
}
