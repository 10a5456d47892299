package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// HoldTicks is how long a key counts as held after its last press event.
// Terminals send no key-up events, only auto-repeated presses.
const HoldTicks = 8

// KeyMapper translates Bubble Tea key messages to input codes and actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapGameKey translates a key during a match. It returns either a platform
// action (pause, restart, back, quit) or the logical input code to hold.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg) (code string, action core.Action) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return "", core.ActionQuit
	case "esc", "p", "P":
		return "", core.ActionPause
	case "r", "R":
		return "", core.ActionRestart
	case "b", "B":
		return "", core.ActionBack
	case "up":
		return core.KeyArrowUp, core.ActionNone
	case "down":
		return core.KeyArrowDown, core.ActionNone
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return string(msg.Runes), core.ActionNone
	}
	return "", core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "z", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "left", "h":
		return MenuActionLeft
	case "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// HeldKeys emulates key-up events for terminals. A press holds its code for
// HoldTicks frames; auto-repeat presses refresh it.
type HeldKeys struct {
	keys core.KeySet
	ttl  map[string]int
}

// NewHeldKeys creates an empty set.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{keys: core.NewKeySet(), ttl: make(map[string]int)}
}

// Press holds code and releases the opposite direction of the same player,
// so switching direction takes effect at once.
func (h *HeldKeys) Press(code string) {
	for _, o := range opposites(code) {
		h.release(o)
	}
	h.keys.Press(code)
	h.ttl[code] = HoldTicks
}

// Pressed returns a snapshot of the codes currently held.
func (h *HeldKeys) Pressed() core.KeySet {
	return h.keys.Clone()
}

// Decay ages every held key by one frame.
func (h *HeldKeys) Decay() {
	for code := range h.ttl {
		h.ttl[code]--
		if h.ttl[code] <= 0 {
			h.release(code)
		}
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.keys)
	clear(h.ttl)
}

func (h *HeldKeys) release(code string) {
	h.keys.Release(code)
	delete(h.ttl, code)
}

// opposites lists the codes that move the same paddle the other way.
func opposites(code string) []string {
	switch strings.ToLower(code) {
	case "z", "w":
		return []string{"s", "S"}
	case "s":
		return []string{"z", "Z", "w", "W"}
	}
	switch code {
	case core.KeyArrowUp:
		return []string{core.KeyArrowDown}
	case core.KeyArrowDown:
		return []string{core.KeyArrowUp}
	}
	return nil
}
