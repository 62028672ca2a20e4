package clock

import (
	"sync/atomic"
	"time"
)

// Manual is a clock that only moves when Advance is called. It implements
// both MonotonicClock and MonotonicNanoClock from a single counter, so unlike
// the system clock its two readings are consistent. Intended for tests.
type Manual struct {
	nanos atomic.Int64
}

var (
	_ MonotonicClock     = (*Manual)(nil)
	_ MonotonicNanoClock = (*Manual)(nil)
)

// NewManual returns a Manual clock reading start.
func NewManual(start time.Duration) *Manual {
	m := &Manual{}
	if start > 0 {
		m.nanos.Store(int64(start))
	}
	return m
}

// Now returns the clock reading in milliseconds.
func (m *Manual) Now() int64 {
	return m.nanos.Load() / int64(time.Millisecond)
}

// NowNanos returns the clock reading in nanoseconds.
func (m *Manual) NowNanos() int64 {
	return m.nanos.Load()
}

// Advance moves the clock forward by d. Negative durations are ignored.
func (m *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.nanos.Add(int64(d))
}
