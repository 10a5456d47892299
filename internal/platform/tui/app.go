package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Env carries the collaborators shared by every screen of one session.
type Env struct {
	Settings *config.Store
	Ledger   *storage.Ledger // Optional; nil disables match history
	Logger   *log.Logger
	FPS      int
	Seed     int64 // 0 means seed from the clock
}

// withDefaults fills in a discarding logger and default settings.
func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Settings == nil {
		st, err := config.NewStore(config.Default())
		if err != nil {
			panic(fmt.Sprintf("default settings rejected: %v", err))
		}
		e.Settings = st
	}
	return e
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenHistory
)

// AppModel manages the full session flow: menu -> match or history -> menu.
type AppModel struct {
	env      Env
	screen   appScreen
	menu     MenuModel
	game     GameModel
	history  HistoryModel
	width    int
	height   int
	quitting bool
}

// NewAppModel creates a session that opens on the menu, or straight into a
// match when startMode is set.
func NewAppModel(env Env, startMode pong.Mode, width, height int) (AppModel, error) {
	env = env.withDefaults()
	m := AppModel{
		env:    env,
		width:  width,
		height: height,
		menu:   NewMenuModel(env.Settings, width, height),
	}
	if startMode != "" {
		game, err := NewGameModel(env, startMode, width, height)
		if err != nil {
			return AppModel{}, err
		}
		m.game = game
		m.screen = screenGame
	}
	return m, nil
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceSolo, ChoiceMulti:
		mode := pong.ModeSolo
		if m.menu.Choice() == ChoiceMulti {
			mode = pong.ModeMulti
		}
		game, err := NewGameModel(m.env, mode, m.width, m.height)
		if err != nil {
			m.env.Logger.Error("cannot start match", "mode", mode, "error", err)
			m.menu = NewMenuModel(m.env.Settings, m.width, m.height)
			m.menu.err = err
			return m, nil
		}
		m.game = game
		m.screen = screenGame
		return m, m.game.Init()

	case ChoiceHistory:
		m.history = NewHistoryModel(m.env.Ledger, m.width, m.height)
		m.screen = screenHistory
		return m, m.history.Init()
	}

	return m, cmd
}

// updateGame handles updates when a match is on screen.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateHistory handles updates on the history screen.
func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = GameModel{}
	m.history = HistoryModel{}
	m.menu = NewMenuModel(m.env.Settings, m.width, m.height)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// Run starts the terminal session and blocks until the user quits.
func Run(env Env, startMode pong.Mode, width, height int) error {
	model, err := NewAppModel(env, startMode, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
