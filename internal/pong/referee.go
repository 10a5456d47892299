package pong

// Verdict is the referee's ruling after a point.
type Verdict struct {
	Phase  Phase
	Winner Side // Set only when Phase is PhaseMatchOver
}

// Award gives exactly one point to side and checks the win condition against
// winScore, which is read at the moment of the point. Once the match is over
// further awards are ignored.
func (m *Match) Award(side Side, winScore int) Verdict {
	if m.Phase == PhaseMatchOver {
		return Verdict{Phase: m.Phase, Winner: m.Winner}
	}

	p := m.Paddle(side)
	if p == nil {
		return Verdict{Phase: m.Phase}
	}
	p.Score++

	if p.Score >= max(winScore, 1) {
		m.Phase = PhaseMatchOver
		m.Winner = side
		m.Running = false
	}
	return Verdict{Phase: m.Phase, Winner: m.Winner}
}
