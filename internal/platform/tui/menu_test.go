package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
)

func newTestStore(t *testing.T) *config.Store {
	t.Helper()
	st, err := config.NewStore(config.Default())
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	return st
}

func pressMenu(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func repeatKey(msg tea.KeyMsg, n int) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, n)
	for i := range msgs {
		msgs[i] = msg
	}
	return msgs
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name     string
		downs    int
		expected MenuChoice
	}{
		{"solo", 0, ChoiceSolo},
		{"two players", 1, ChoiceMulti},
		{"history", 7, ChoiceHistory},
		{"quit", 8, ChoiceQuit},
		{"cursor stops at the last item", 20, ChoiceQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(newTestStore(t), 80, 24)
			m = pressMenu(m, append(repeatKey(keyDown, tc.downs), keyEnter)...)
			if m.Choice() != tc.expected {
				t.Errorf("Choice() = %v, expected %v", m.Choice(), tc.expected)
			}
		})
	}
}

func TestMenuQuitKey(t *testing.T) {
	m := NewMenuModel(newTestStore(t), 80, 24)
	m = pressMenu(m, runeKey('q'))
	if m.Choice() != ChoiceQuit {
		t.Errorf("Choice() = %v, expected quit", m.Choice())
	}
	if m.View() != "" {
		t.Error("menu should render nothing once a choice is made")
	}
}

func TestMenuAdjustsSettings(t *testing.T) {
	store := newTestStore(t)
	m := NewMenuModel(store, 80, 24)

	// Difficulty
	m = pressMenu(m, keyDown, keyDown, keyRight)
	if got := store.Settings().Difficulty; got != config.DifficultyHard {
		t.Errorf("Difficulty = %s, expected hard", got)
	}
	m = pressMenu(m, keyLeft, keyLeft)
	if got := store.Settings().Difficulty; got != config.DifficultyEasy {
		t.Errorf("Difficulty = %s, expected easy", got)
	}

	// Keyboard scheme, Enter also cycles a setting
	m = pressMenu(m, keyDown, keyEnter)
	if got := store.Settings().ControlScheme; got != config.SchemeQWERTY {
		t.Errorf("ControlScheme = %s, expected qwerty", got)
	}

	// Ball speed
	m = pressMenu(m, keyDown, keyLeft)
	if got := store.Settings().BallSpeed; got != 4 {
		t.Errorf("BallSpeed = %v, expected 4", got)
	}

	// Paddle speed
	m = pressMenu(m, keyDown, keyRight)
	if got := store.Settings().PaddleSpeed; got != 9 {
		t.Errorf("PaddleSpeed = %v, expected 9", got)
	}

	// Win score
	m = pressMenu(m, keyDown, keyRight, keyRight)
	if got := store.Settings().WinScore; got != 13 {
		t.Errorf("WinScore = %d, expected 13", got)
	}

	if m.Choice() != ChoiceNone {
		t.Errorf("adjusting settings should not pick a choice, got %v", m.Choice())
	}
}

func TestMenuAdjustClamps(t *testing.T) {
	store := newTestStore(t)
	m := NewMenuModel(store, 80, 24)

	// Win score down to the minimum and beyond
	pressMenu(m, append(repeatKey(keyDown, 6), repeatKey(keyLeft, 30)...)...)
	if got := store.Settings().WinScore; got != config.MinWinScore {
		t.Errorf("WinScore = %d, expected clamp to %d", got, config.MinWinScore)
	}
}

func TestMenuLeftRightOnModesIsNoop(t *testing.T) {
	store := newTestStore(t)
	m := NewMenuModel(store, 80, 24)
	m = pressMenu(m, keyRight, keyLeft, keyUp)

	if store.Settings() != config.Default() {
		t.Errorf("settings changed: %+v", store.Settings())
	}
	if m.Choice() != ChoiceNone {
		t.Errorf("Choice() = %v, expected none", m.Choice())
	}
}
