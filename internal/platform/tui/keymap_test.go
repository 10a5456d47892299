package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapGameKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantCode   string
		wantAction core.Action
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, "", core.ActionQuit},
		{"q quits", runeKey('q'), "", core.ActionQuit},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, "", core.ActionPause},
		{"p pauses", runeKey('p'), "", core.ActionPause},
		{"P pauses", runeKey('P'), "", core.ActionPause},
		{"r restarts", runeKey('r'), "", core.ActionRestart},
		{"b goes back", runeKey('b'), "", core.ActionBack},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyArrowUp, core.ActionNone},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.KeyArrowDown, core.ActionNone},
		{"letter passes through", runeKey('z'), "z", core.ActionNone},
		{"case is kept", runeKey('W'), "W", core.ActionNone},
		{"enter ignored", tea.KeyMsg{Type: tea.KeyEnter}, "", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, action := km.MapGameKey(tc.msg)
			if code != tc.wantCode || action != tc.wantAction {
				t.Errorf("MapGameKey(%q) = (%q, %v), expected (%q, %v)",
					tc.msg.String(), code, action, tc.wantCode, tc.wantAction)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('z'), MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys()
	h.Press("z")

	for i := 0; i < HoldTicks-1; i++ {
		h.Decay()
		if !h.Pressed().Pressed("z") {
			t.Fatalf("z released after %d frames, expected %d", i+1, HoldTicks)
		}
	}
	h.Decay()
	if h.Pressed().Pressed("z") {
		t.Errorf("z still held after %d frames", HoldTicks)
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.KeyArrowUp)
	for i := 0; i < HoldTicks-1; i++ {
		h.Decay()
	}
	h.Press(core.KeyArrowUp)
	h.Decay()
	if !h.Pressed().Pressed(core.KeyArrowUp) {
		t.Error("auto-repeat press should refresh the hold")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	tests := []struct {
		first, second string
	}{
		{"z", "s"},
		{"W", "s"},
		{"S", "w"},
		{core.KeyArrowUp, core.KeyArrowDown},
		{core.KeyArrowDown, core.KeyArrowUp},
	}

	for _, tc := range tests {
		h := NewHeldKeys()
		h.Press(tc.first)
		h.Press(tc.second)
		keys := h.Pressed()
		if keys.Pressed(tc.first) {
			t.Errorf("pressing %q should release %q", tc.second, tc.first)
		}
		if !keys.Pressed(tc.second) {
			t.Errorf("%q should be held", tc.second)
		}
	}
}

func TestHeldKeysPlayersIndependent(t *testing.T) {
	h := NewHeldKeys()
	h.Press("z")
	h.Press(core.KeyArrowDown)

	keys := h.Pressed()
	if !keys.Pressed("z") || !keys.Pressed(core.KeyArrowDown) {
		t.Errorf("both players' keys should be held, got %v", keys)
	}

	h.Reset()
	if len(h.Pressed()) != 0 {
		t.Errorf("Reset should release everything, got %v", h.Pressed())
	}
}

func TestHeldKeysSnapshotIsIndependent(t *testing.T) {
	h := NewHeldKeys()
	h.Press("z")

	snap := h.Pressed()
	snap.Release("z")
	snap.Press("s")

	if !h.Pressed().Pressed("z") || h.Pressed().Pressed("s") {
		t.Errorf("changing a snapshot leaked into the held set: %v", h.Pressed())
	}
}
