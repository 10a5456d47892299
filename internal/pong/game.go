package pong

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	// ErrNoMatch is returned by lifecycle calls that need a running match.
	ErrNoMatch = errors.New("pong: no active match")

	// ErrMatchOver is returned when pausing or resetting a finished match.
	ErrMatchOver = errors.New("pong: match is over")
)

// InputSource provides the keys held down during the current tick.
type InputSource interface {
	Pressed() core.KeySet
}

// SettingsSource provides the live settings. It is read once per tick, so a
// change made between ticks takes effect on the next one.
type SettingsSource interface {
	Settings() config.Settings
}

// Options wires a Game to its collaborators.
type Options struct {
	Ticks    TickSource     // Required
	Input    InputSource    // Required
	Settings SettingsSource // Required
	Sink     Sink           // Required
	Arena    Arena          // Zero value means DefaultArena
	Rand     *rand.Rand     // Serve angles and CPU reaction rolls; nil seeds with 1
	Logger   *log.Logger    // nil discards logs
}

// Game is the loop orchestrator. One tick runs, in order: input resolution,
// the CPU move in solo mode, paddle movement, ball physics, the referee, and
// finally a RenderState or MatchEnd emission.
//
// Game is not safe for concurrent use; the tick source must call back on the
// same goroutine that drives the lifecycle methods.
type Game struct {
	ticks    TickSource
	input    InputSource
	settings SettingsSource
	sink     Sink
	rng      *rand.Rand
	logger   *log.Logger

	arena  Arena
	engine Engine
	ai     *AI

	match    *Match
	lastMode Mode

	// Last valid lookups, kept in case the live settings turn invalid mid-match.
	profile  config.AIProfile
	bindings Bindings
}

// New creates a Game. No match is running until StartMatch is called.
func New(opts Options) (*Game, error) {
	switch {
	case opts.Ticks == nil:
		return nil, errors.New("pong: tick source is required")
	case opts.Input == nil:
		return nil, errors.New("pong: input source is required")
	case opts.Settings == nil:
		return nil, errors.New("pong: settings source is required")
	case opts.Sink == nil:
		return nil, errors.New("pong: sink is required")
	}

	arena := opts.Arena
	if arena.Width <= 0 || arena.Height <= 0 {
		arena = DefaultArena()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		ticks:    opts.Ticks,
		input:    opts.Input,
		settings: opts.Settings,
		sink:     opts.Sink,
		rng:      rng,
		logger:   logger,
		arena:    arena,
		engine:   NewEngine(arena),
		ai:       NewAI(rng),
	}, nil
}

// StartMatch discards any current match and starts a fresh one in mode.
// Unknown modes, difficulties and control schemes fail fast.
func (g *Game) StartMatch(mode Mode) error {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return err
	}

	s := g.settings.Settings()
	if err := s.Validate(); err != nil {
		return fmt.Errorf("pong: cannot start match: %w", err)
	}
	s = s.Sanitize()
	profile, _ := s.Difficulty.Profile()
	bindings, err := ControlBindings(s.ControlScheme)
	if err != nil {
		return fmt.Errorf("pong: cannot start match: %w", err)
	}

	g.ticks.Cancel()

	m := NewMatch(mode, g.arena)
	ServeBall(&m.Ball, m.Arena, s.BallSpeed, s.MaxBallSpeed, g.rng)
	m.Running = true

	g.match = m
	g.lastMode = mode
	g.profile = profile
	g.bindings = bindings

	g.logger.Info("match started",
		"mode", mode,
		"difficulty", s.Difficulty,
		"win_score", s.WinScore,
		"scheme", s.ControlScheme,
	)

	g.ticks.OnTick(g.tick)
	return nil
}

// NewMatch restarts with the mode of the previous match (play again).
func (g *Game) NewMatch() error {
	if g.lastMode == "" {
		return ErrNoMatch
	}
	return g.StartMatch(g.lastMode)
}

// ResetRound re-centres the ball and serves it again at the configured speed.
// Scores and paddle positions are kept.
func (g *Game) ResetRound() error {
	m := g.match
	if m == nil {
		return ErrNoMatch
	}
	if m.Phase == PhaseMatchOver {
		return ErrMatchOver
	}
	s := g.settings.Settings().Sanitize()
	ServeBall(&m.Ball, m.Arena, s.BallSpeed, s.MaxBallSpeed, g.rng)
	return nil
}

// Pause stops tick scheduling. Pausing an already paused match is a no-op.
func (g *Game) Pause() error {
	m := g.match
	if m == nil {
		return ErrNoMatch
	}
	if m.Phase == PhaseMatchOver {
		return ErrMatchOver
	}
	if m.Paused {
		return nil
	}
	m.Paused = true
	g.ticks.Cancel()
	g.logger.Debug("match paused", "tick", m.Tick)
	return nil
}

// Resume restarts tick scheduling from the exact paused state.
func (g *Game) Resume() error {
	m := g.match
	if m == nil {
		return ErrNoMatch
	}
	if m.Phase == PhaseMatchOver {
		return ErrMatchOver
	}
	if !m.Paused {
		return nil
	}
	m.Paused = false
	g.ticks.OnTick(g.tick)
	g.logger.Debug("match resumed", "tick", m.Tick)
	return nil
}

// TogglePause pauses a running match or resumes a paused one.
func (g *Game) TogglePause() error {
	if g.Paused() {
		return g.Resume()
	}
	return g.Pause()
}

// Quit cancels any pending tick and discards the match. Safe to call at any
// time, any number of times.
func (g *Game) Quit() {
	g.ticks.Cancel()
	if g.match == nil {
		return
	}
	g.logger.Info("match abandoned",
		"score1", g.match.Left.Score,
		"score2", g.match.Right.Score,
		"tick", g.match.Tick,
	)
	g.match = nil
}

// Active reports whether a match exists (running, paused or over).
func (g *Game) Active() bool {
	return g.match != nil
}

// Paused reports whether the current match is paused.
func (g *Game) Paused() bool {
	return g.match != nil && g.match.Paused
}

// Over reports whether the current match has a winner.
func (g *Game) Over() bool {
	return g.match != nil && g.match.Phase == PhaseMatchOver
}

// Mode returns the mode of the current or most recent match.
func (g *Game) Mode() Mode {
	return g.lastMode
}

// State returns the current render snapshot without advancing the match.
func (g *Game) State() (RenderState, bool) {
	if g.match == nil {
		return RenderState{}, false
	}
	return g.match.RenderState(), true
}

// Match exposes the live match for inspection. Callers must not keep it
// across ticks.
func (g *Game) Match() *Match {
	return g.match
}

func (g *Game) tick() {
	m := g.match
	if m == nil || !m.Running || m.Paused {
		return
	}

	s := g.currentSettings()

	// 1. Input.
	intents := Resolve(g.input.Pressed(), g.bindings, m.Mode)
	rightAmount := s.PaddleSpeed

	// 2. CPU.
	if m.Mode == ModeSolo {
		d := g.ai.Decide(m.Ball, m.Right, g.profile, s.PaddleSpeed)
		intents.Right = d.Intent
		rightAmount = d.Amount
	}

	// 3. Paddles.
	m.Left.Move(intents.Left.Sign()*s.PaddleSpeed, m.Arena)
	m.Right.Move(intents.Right.Sign()*rightAmount, m.Arena)

	// 4. Ball.
	LimitSpeed(&m.Ball, s.MaxBallSpeed)
	out := g.engine.Advance(&m.Ball, &m.Left, &m.Right)
	m.Tick++

	// 5. Referee.
	if out.Scored {
		v := m.Award(out.Scorer, s.WinScore)
		g.logger.Debug("point",
			"scorer", PlayerName(m.Mode, out.Scorer),
			"score1", m.Left.Score,
			"score2", m.Right.Score,
		)
		if v.Phase == PhaseMatchOver {
			g.finish(m, s)
			return
		}
		ServeBall(&m.Ball, m.Arena, s.BallSpeed, s.MaxBallSpeed, g.rng)
	}

	g.sink.Render(m.RenderState())
}

// currentSettings reads the live settings and refreshes the cached lookups.
// Invalid enum values keep the last good profile and bindings.
func (g *Game) currentSettings() config.Settings {
	s := g.settings.Settings().Sanitize()
	if p, ok := s.Difficulty.Profile(); ok {
		g.profile = p
	}
	if b, err := ControlBindings(s.ControlScheme); err == nil {
		g.bindings = b
	}
	return s
}

func (g *Game) finish(m *Match, s config.Settings) {
	g.ticks.Cancel()

	end := MatchEnd{
		Winner:     m.Winner,
		Score1:     m.Left.Score,
		Score2:     m.Right.Score,
		Mode:       m.Mode,
		Difficulty: s.Difficulty,
		Ticks:      m.Tick,
	}
	g.logger.Info("match over",
		"winner", end.WinnerName(),
		"score1", end.Score1,
		"score2", end.Score2,
		"ticks", end.Ticks,
	)
	g.sink.MatchEnded(end)
}
