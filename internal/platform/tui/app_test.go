package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func sendApp(t *testing.T, m AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(AppModel)
	}
	return m, cmd
}

func TestAppStartsOnMenu(t *testing.T) {
	m, err := NewAppModel(Env{}, "", 80, 24)
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
	if !strings.Contains(m.View(), "P O N G") {
		t.Error("menu title missing from the first view")
	}
}

func TestAppStartsMatchDirectly(t *testing.T) {
	m, err := NewAppModel(Env{Seed: 3}, pong.ModeMulti, 80, 24)
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first frame")
	}
	if m.game.game.Mode() != pong.ModeMulti {
		t.Errorf("Mode() = %s, expected multi", m.game.game.Mode())
	}
}

func TestAppRejectsUnknownMode(t *testing.T) {
	_, err := NewAppModel(Env{}, pong.Mode("tennis"), 80, 24)
	if !errors.Is(err, pong.ErrUnsupportedMode) {
		t.Errorf("expected ErrUnsupportedMode, got %v", err)
	}
}

func TestAppMenuToMatchAndBack(t *testing.T) {
	m, err := NewAppModel(Env{Seed: 9}, "", 80, 24)
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}

	m, cmd := sendApp(t, m, keyEnter)
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game after selecting solo", m.screen)
	}
	if cmd == nil {
		t.Error("starting a match should schedule a frame")
	}
	if m.game.game.Mode() != pong.ModeSolo {
		t.Errorf("Mode() = %s, expected solo", m.game.game.Mode())
	}

	// Back only works while paused or over
	m, _ = sendApp(t, m, runeKey('b'))
	if m.screen != screenGame {
		t.Fatal("b during play should not leave the match")
	}

	m, _ = sendApp(t, m, runeKey('p'))
	if !m.game.game.Paused() {
		t.Fatal("p should pause the match")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	m, _ = sendApp(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after b while paused", m.screen)
	}
	if m.menu.Choice() != ChoiceNone {
		t.Error("menu should be fresh after returning")
	}
}

func TestAppQuitFromMatch(t *testing.T) {
	m, err := NewAppModel(Env{}, pong.ModeSolo, 80, 24)
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}

	m, cmd := sendApp(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q should quit the session")
	}
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestAppHistoryScreen(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer ledger.Close()

	if _, err := ledger.Record(pong.MatchEnd{
		Winner: pong.SideLeft, Score1: 11, Score2: 4, Mode: pong.ModeSolo,
		Difficulty: "hard", Ticks: 3600,
	}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	m, err := NewAppModel(Env{Ledger: ledger}, "", 100, 30)
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}

	m, _ = sendApp(t, m, append(toMsgs(repeatKey(keyDown, 7)), keyEnter)...)
	if m.screen != screenHistory {
		t.Fatalf("screen = %v, expected history", m.screen)
	}
	view := m.View()
	if !strings.Contains(view, "MATCH HISTORY") {
		t.Error("history title missing")
	}
	if !strings.Contains(view, "11 - 4") {
		t.Errorf("recorded match missing from history view:\n%s", view)
	}

	m, _ = sendApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after esc", m.screen)
	}
}

func TestAppResizeReachesMatch(t *testing.T) {
	m, err := NewAppModel(Env{}, pong.ModeMulti, 80, 24)
	if err != nil {
		t.Fatalf("NewAppModel() failed: %v", err)
	}

	m, _ = sendApp(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, expected 100x40", m.width, m.height)
	}
	if m.game.screen.Width() != 100 || m.game.screen.Height() != 40 {
		t.Errorf("match screen = %dx%d, expected 100x40", m.game.screen.Width(), m.game.screen.Height())
	}
}

func TestGameModelTickMovesPaddle(t *testing.T) {
	m, err := NewGameModel(Env{Seed: 5}, pong.ModeMulti, 80, 24)
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	start := m.view.state.Paddle1Y
	speed := m.env.Settings.Settings().PaddleSpeed

	next, _ := m.Update(runeKey('z'))
	m = next.(GameModel)
	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(GameModel)

	if m.view.state.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", m.view.state.Tick)
	}
	if got := m.view.state.Paddle1Y; got != start-speed {
		t.Errorf("Paddle1Y = %v, expected %v", got, start-speed)
	}
	if cmd == nil {
		t.Error("a running match should schedule the next frame")
	}
}

func TestGameModelPausedIgnoresTicks(t *testing.T) {
	m, err := NewGameModel(Env{Seed: 5}, pong.ModeSolo, 80, 24)
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(GameModel)

	if m.view.state.Tick != 0 {
		t.Errorf("paused match advanced to tick %d", m.view.state.Tick)
	}
	if cmd != nil {
		t.Error("a paused match should not schedule frames")
	}

	// Resume schedules again
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if m.game.Paused() {
		t.Error("esc should resume")
	}
	if cmd == nil {
		t.Error("resuming should schedule a frame")
	}
}

func toMsgs(keys []tea.KeyMsg) []tea.Msg {
	msgs := make([]tea.Msg, len(keys))
	for i, k := range keys {
		msgs[i] = k
	}
	return msgs
}
