package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// matchView is the sink the simulation writes into; View reads from it.
type matchView struct {
	state pong.RenderState
	end   *pong.MatchEnd
}

func (v *matchView) Render(s pong.RenderState) { v.state = s }

func (v *matchView) MatchEnded(e pong.MatchEnd) { v.end = &e }

// GameModel runs one match screen: the simulation, its frame ticker and the
// held-key emulation.
type GameModel struct {
	env       Env
	game      *pong.Game
	ticker    *FrameTicker
	held      *HeldKeys
	view      *matchView
	screen    *core.Screen
	keyMapper *KeyMapper
	quitting  bool
	back      bool
}

// NewGameModel creates a match screen and starts a match in mode.
func NewGameModel(env Env, mode pong.Mode, width, height int) (GameModel, error) {
	env = env.withDefaults()
	seed := env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := GameModel{
		env:       env,
		ticker:    NewFrameTicker(env.FPS),
		held:      NewHeldKeys(),
		view:      &matchView{},
		screen:    core.NewScreen(width, height),
		keyMapper: NewKeyMapper(),
	}

	sinks := pong.MultiSink{m.view}
	if env.Ledger != nil {
		sinks = append(sinks, env.Ledger.Sink(env.Logger))
	}

	game, err := pong.New(pong.Options{
		Ticks:    m.ticker,
		Input:    m.held,
		Settings: env.Settings,
		Sink:     sinks,
		Rand:     rand.New(rand.NewSource(seed)), //nolint:gosec // gameplay randomness
		Logger:   env.Logger,
	})
	if err != nil {
		return GameModel{}, err
	}
	if err := game.StartMatch(mode); err != nil {
		return GameModel{}, err
	}
	m.game = game
	m.view.state, _ = game.State()
	return m, nil
}

// Init schedules the first frame.
func (m GameModel) Init() tea.Cmd {
	return m.ticker.Schedule()
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		cmd := m.ticker.Handle(msg)
		m.held.Decay()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	code, action := m.keyMapper.MapGameKey(msg)

	switch action {
	case core.ActionQuit:
		m.game.Quit()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !m.game.Over() {
			m.held.Reset()
			if err := m.game.TogglePause(); err != nil {
				m.env.Logger.Warn("pause failed", "error", err)
			}
		}

	case core.ActionRestart:
		if m.game.Over() || m.game.Paused() {
			m.restart()
		}

	case core.ActionBack:
		if m.game.Over() || m.game.Paused() {
			m.game.Quit()
			m.back = true
			return m, nil
		}
	}

	if code != "" && !m.game.Paused() {
		m.held.Press(code)
	}
	return m, m.ticker.Schedule()
}

// restart starts a new match in the same mode (play again).
func (m GameModel) restart() {
	m.held.Reset()
	m.view.end = nil
	if err := m.game.NewMatch(); err != nil {
		m.env.Logger.Warn("restart failed", "error", err)
		return
	}
	m.view.state, _ = m.game.State()
}

// View renders the match.
func (m GameModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	mode := m.game.Mode()
	s := m.env.Settings.Settings()
	right := pong.PlayerName(mode, pong.SideRight)
	if mode == pong.ModeSolo {
		right = fmt.Sprintf("%s (%s)", right, s.Difficulty)
	}

	DrawMatch(m.screen, m.view.state, HUD{
		Left:  pong.PlayerName(mode, pong.SideLeft),
		Right: right,
		Hint:  pong.ControlsHint(s.ControlScheme, mode) + " | Q: quit",
	})

	switch {
	case m.view.end != nil:
		end := m.view.end
		DrawMessage(m.screen,
			fmt.Sprintf("%s wins!", end.WinnerName()),
			fmt.Sprintf("Final score %d - %d  |  R: play again  B: menu", end.Score1, end.Score2),
		)
	case m.game.Paused():
		DrawMessage(m.screen, "PAUSED", "P/Esc: resume  R: restart  B: menu")
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}
