package tui

import (
	"testing"
	"time"
)

func TestFrameTickerInterval(t *testing.T) {
	tests := []struct {
		fps      int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tc := range tests {
		if got := NewFrameTicker(tc.fps).Interval(); got != tc.expected {
			t.Errorf("NewFrameTicker(%d).Interval() = %v, expected %v", tc.fps, got, tc.expected)
		}
	}
}

func TestFrameTickerScheduleOnlyWhenArmed(t *testing.T) {
	ft := NewFrameTicker(60)
	if ft.Schedule() != nil {
		t.Error("Schedule without a callback should return nil")
	}

	ft.OnTick(func() {})
	if !ft.Armed() {
		t.Fatal("ticker should be armed after OnTick")
	}
	if ft.Schedule() == nil {
		t.Fatal("Schedule should return a command when armed")
	}
	if ft.Schedule() != nil {
		t.Error("only one frame may be pending at a time")
	}
}

func TestFrameTickerHandle(t *testing.T) {
	ft := NewFrameTicker(60)
	calls := 0
	ft.OnTick(func() { calls++ })
	ft.Schedule()

	cmd := ft.Handle(TickMsg(time.Now()))
	if calls != 1 {
		t.Errorf("callback ran %d times, expected 1", calls)
	}
	if cmd == nil {
		t.Error("Handle should schedule the next frame")
	}
}

func TestFrameTickerCancel(t *testing.T) {
	ft := NewFrameTicker(60)
	calls := 0
	ft.OnTick(func() { calls++ })
	ft.Schedule()

	ft.Cancel()
	ft.Cancel()
	if ft.Armed() {
		t.Error("ticker should not be armed after Cancel")
	}

	// The frame already in flight still arrives
	if cmd := ft.Handle(TickMsg(time.Now())); cmd != nil {
		t.Error("a cancelled ticker should not reschedule")
	}
	if calls != 0 {
		t.Errorf("cancelled callback ran %d times", calls)
	}

	ft.OnTick(func() { calls++ })
	if ft.Schedule() == nil {
		t.Error("re-armed ticker should schedule again")
	}
}
