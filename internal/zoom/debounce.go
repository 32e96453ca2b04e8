package zoom

import (
	"sync"
	"time"
)

// Debouncer enforces a minimum spacing between accepted triggers
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	last     time.Time
}

// NewDebouncer creates a debouncer; a zero interval accepts every trigger
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Allow reports whether a trigger at now is accepted and, if so, records it.
// Triggers with a timestamp earlier than the last accepted one are rejected
// while inside the window.
func (d *Debouncer) Allow(now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.last.IsZero() && d.interval > 0 && now.Sub(d.last) < d.interval {
		return false
	}
	d.last = now
	return true
}

// Interval returns the configured spacing
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}

// Reset forgets the last accepted trigger
func (d *Debouncer) Reset() {
	d.mu.Lock()
	d.last = time.Time{}
	d.mu.Unlock()
}
