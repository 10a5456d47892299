package pong

import "github.com/vovakirdan/tui-pong/internal/config"

// RenderState is the per-tick snapshot handed to the presentation layer.
// Ball velocity is included so the ball trail can be drawn behind it.
type RenderState struct {
	BallX, BallY   float64
	BallVX, BallVY float64
	Paddle1Y       float64
	Paddle2Y       float64
	Score1         int
	Score2         int
	Tick           uint64
}

// MatchEnd is emitted once when a side reaches the win score.
type MatchEnd struct {
	Winner     Side
	Score1     int
	Score2     int
	Mode       Mode
	Difficulty config.Difficulty // Only meaningful in solo mode
	Ticks      uint64
}

// WinnerName returns the display name of the winning player.
func (e MatchEnd) WinnerName() string {
	return PlayerName(e.Mode, e.Winner)
}

// Sink receives everything the simulation emits.
type Sink interface {
	Render(RenderState)
	MatchEnded(MatchEnd)
}

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

// Render forwards the snapshot to every sink.
func (ms MultiSink) Render(s RenderState) {
	for _, sink := range ms {
		sink.Render(s)
	}
}

// MatchEnded forwards the result to every sink.
func (ms MultiSink) MatchEnded(e MatchEnd) {
	for _, sink := range ms {
		sink.MatchEnded(e)
	}
}
