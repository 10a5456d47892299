package pong

// TickSource schedules the simulation. OnTick registers the callback run on
// every tick until Cancel is called. Cancel must be idempotent.
type TickSource interface {
	OnTick(fn func())
	Cancel()
}

// ManualTicker is a TickSource driven explicitly with Fire.
// It lets tests step the simulation one tick at a time.
type ManualTicker struct {
	fn func()
}

// OnTick registers fn, replacing any previous callback.
func (t *ManualTicker) OnTick(fn func()) {
	t.fn = fn
}

// Cancel drops the registered callback.
func (t *ManualTicker) Cancel() {
	t.fn = nil
}

// Armed reports whether a callback is registered.
func (t *ManualTicker) Armed() bool {
	return t.fn != nil
}

// Fire runs one tick. It returns false when nothing is registered.
func (t *ManualTicker) Fire() bool {
	fn := t.fn
	if fn == nil {
		return false
	}
	fn()
	return true
}

// FireN runs up to n ticks and returns how many actually fired.
func (t *ManualTicker) FireN(n int) int {
	fired := 0
	for i := 0; i < n; i++ {
		if !t.Fire() {
			break
		}
		fired++
	}
	return fired
}
