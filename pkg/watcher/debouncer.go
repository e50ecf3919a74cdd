// Package watcher coalesces bursts of terminal resize and config file events.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration suits resize storms from a dragged window edge.
const DefaultDebounceDuration = 50 * time.Millisecond

// Debouncer runs only the last callback handed to Trigger within a window.
// A dragged terminal edge sends a SIGWINCH per cell of movement; the
// terminal width source funnels them through a Debouncer so subscribers see
// one breakpoint update for the final size instead of one per signal.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	gen      uint64
}

// NewDebouncer creates a Debouncer. A zero duration means
// DefaultDebounceDuration.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{duration: duration}
}

// Trigger (re)arms the timer with callback.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		if !d.claim(gen) {
			return
		}
		callback()
	})
}

// claim reports whether gen is still the latest trigger. A timer that fired
// just as Trigger or Cancel stopped it must not run a stale callback.
func (d *Debouncer) claim(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return false
	}
	d.timer = nil
	return true
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
