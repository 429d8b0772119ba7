package mutations

import "sync/atomic"

// Tracker counts in-flight mutations so callers can disable submit controls
// while a write is outstanding. Safe for concurrent use.
type Tracker struct {
	inflight atomic.Int64
}

// NewTracker returns an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) begin() {
	t.inflight.Add(1)
}

func (t *Tracker) end() {
	t.inflight.Add(-1)
}

// Pending reports whether any mutation is currently in flight.
func (t *Tracker) Pending() bool {
	return t.inflight.Load() > 0
}

// InFlight returns the number of outstanding mutations.
func (t *Tracker) InFlight() int {
	return int(t.inflight.Load())
}
