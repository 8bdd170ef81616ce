// Package debounce provides a timer-based coalescing primitive: rapid calls
// collapse into a single deferred invocation after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces calls to Do. Each call cancels any pending invocation
// and schedules a new one; only the last function passed within a burst
// fires, once the quiet period elapses. Fires never overlap a reschedule:
// last writer wins, intermediate values are dropped.
type Debouncer struct {
	wait  time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Debouncer with the given quiet period.
func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Do schedules fn to run after the quiet period, cancelling any previously
// scheduled function that has not fired yet.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
