// Package pong implements the Pong simulation core: entity state, ball
// physics, the CPU opponent, input resolution, the match referee and the
// per-tick loop that ties them together.
//
// The package never draws anything. It consumes a pressed-key snapshot and the
// live settings each tick and emits plain RenderState and MatchEnd values.
package pong

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Arena and entity dimensions in logical units.
const (
	ArenaWidth   = 800.0
	ArenaHeight  = 400.0
	BallRadius   = 10.0
	PaddleWidth  = 15.0
	PaddleHeight = 100.0
	PaddleInset  = 10.0 // Gap between the arena edge and the outer paddle face
)

// ErrUnsupportedMode is returned when a match is requested for an unknown mode.
var ErrUnsupportedMode = errors.New("pong: unsupported game mode")

// Mode selects who controls the right paddle.
type Mode string

const (
	ModeSolo  Mode = "solo"  // Right paddle is the CPU
	ModeMulti Mode = "multi" // Right paddle is player 2 on the same keyboard
)

// ParseMode converts a name to a Mode.
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case ModeSolo, ModeMulti:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
}

// Side identifies a paddle. The left side is player 1.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// PlayerName returns the display name of the player on side s.
func PlayerName(mode Mode, s Side) string {
	switch s {
	case SideLeft:
		return "Player 1"
	case SideRight:
		if mode == ModeSolo {
			return "AI"
		}
		return "Player 2"
	default:
		return ""
	}
}

// Arena is the rectangular play field. It does not change during a match.
type Arena struct {
	Width  float64
	Height float64
}

// DefaultArena returns the standard 800x400 field.
func DefaultArena() Arena {
	return Arena{Width: ArenaWidth, Height: ArenaHeight}
}

// Ball holds the ball kinematics.
// Invariant after every update: |(VX, VY)| == Speed and Speed <= MaxSpeed.
type Ball struct {
	X, Y     float64 // Centre
	VX, VY   float64
	Radius   float64
	Speed    float64
	MaxSpeed float64
}

// Box returns the ball's bounding square.
func (b Ball) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius)
}

// Paddle is one player's bat. X never changes; Y is the top edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Score         int
	DY            float64 // Movement applied during the current tick
}

// Box returns the paddle rectangle.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterY returns the vertical centre of the paddle.
func (p Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Move shifts the paddle by dy and clamps it inside the arena.
func (p *Paddle) Move(dy float64, a Arena) {
	before := p.Y
	p.Y = core.ClampF(p.Y+dy, 0, a.Height-p.Height)
	p.DY = p.Y - before
}

// Phase is the referee state of a match.
type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseMatchOver
)

func (p Phase) String() string {
	if p == PhaseMatchOver {
		return "match over"
	}
	return "in progress"
}

// Match owns the ball and both paddles for its lifetime.
type Match struct {
	Mode    Mode
	Running bool
	Paused  bool
	Arena   Arena
	Ball    Ball
	Left    Paddle
	Right   Paddle
	Phase   Phase
	Winner  Side
	Tick    uint64
}

// NewMatch creates a match with both paddles centred and scores at zero.
// The ball sits in the middle at rest until it is served.
func NewMatch(mode Mode, a Arena) *Match {
	y := a.Height/2 - PaddleHeight/2
	return &Match{
		Mode:  mode,
		Arena: a,
		Ball: Ball{
			X:      a.Width / 2,
			Y:      a.Height / 2,
			Radius: BallRadius,
		},
		Left: Paddle{
			X: PaddleInset, Y: y,
			Width: PaddleWidth, Height: PaddleHeight,
		},
		Right: Paddle{
			X: a.Width - PaddleInset - PaddleWidth, Y: y,
			Width: PaddleWidth, Height: PaddleHeight,
		},
	}
}

// Paddle returns the paddle on side s, or nil for SideNone.
func (m *Match) Paddle(s Side) *Paddle {
	switch s {
	case SideLeft:
		return &m.Left
	case SideRight:
		return &m.Right
	default:
		return nil
	}
}

// RenderState builds the snapshot for the presentation layer.
func (m *Match) RenderState() RenderState {
	return RenderState{
		BallX:    m.Ball.X,
		BallY:    m.Ball.Y,
		BallVX:   m.Ball.VX,
		BallVY:   m.Ball.VY,
		Paddle1Y: m.Left.Y,
		Paddle2Y: m.Right.Y,
		Score1:   m.Left.Score,
		Score2:   m.Right.Score,
		Tick:     m.Tick,
	}
}
