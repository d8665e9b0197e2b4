package pipeline

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of file change notifications into a single
// rerun. The timer starts on the first trigger after a fire and is not
// extended by later triggers, so a log that is written continuously is
// still re-analyzed once per window.
type debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window}
}

// trigger arms the timer if it is not already pending.
func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		d.timer = time.NewTimer(d.window)
	}
}

// fireCh returns the timer's channel, or nil if no timer is armed.
func (d *debouncer) fireCh() <-chan time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return nil
	}
	return d.timer.C
}

// reset disarms the timer after it fired or when shutting down.
func (d *debouncer) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
