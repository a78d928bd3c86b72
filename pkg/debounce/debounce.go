// Package debounce provides a trailing-edge debouncer: of all calls inside
// the wait window, only the last one fires.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Do schedules fn after the wait window, cancelling any previously
// scheduled call that has not fired yet.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
