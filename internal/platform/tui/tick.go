// Package tui is the Bubble Tea presentation adapter for Pong. It turns key
// events into the pressed-key snapshot the simulation reads, drives the
// simulation with frame ticks and draws the render snapshots it emits.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after the
// frame interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FrameTicker is a pong.TickSource paced by Bubble Tea ticks.
// At most one tick message is in flight; cancelled ticks still arrive but run
// nothing and are not rescheduled.
type FrameTicker struct {
	interval time.Duration
	fn       func()
	pending  bool
}

// NewFrameTicker creates a ticker running at fps frames per second.
func NewFrameTicker(fps int) *FrameTicker {
	if fps <= 0 {
		fps = 60
	}
	return &FrameTicker{interval: time.Second / time.Duration(fps)}
}

// OnTick registers the per-frame callback.
func (t *FrameTicker) OnTick(fn func()) {
	t.fn = fn
}

// Cancel stops running the callback. Safe to call repeatedly.
func (t *FrameTicker) Cancel() {
	t.fn = nil
}

// Armed reports whether a callback is registered.
func (t *FrameTicker) Armed() bool {
	return t.fn != nil
}

// Interval returns the frame duration.
func (t *FrameTicker) Interval() time.Duration {
	return t.interval
}

// Schedule returns the command for the next frame, or nil when nothing is
// registered or a frame is already pending.
func (t *FrameTicker) Schedule() tea.Cmd {
	if t.fn == nil || t.pending {
		return nil
	}
	t.pending = true
	return tickCmd(t.interval)
}

// Handle runs the callback for a delivered frame and schedules the next one.
func (t *FrameTicker) Handle(TickMsg) tea.Cmd {
	t.pending = false
	if t.fn != nil {
		t.fn()
	}
	return t.Schedule()
}
