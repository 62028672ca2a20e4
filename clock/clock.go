// Package clock provides monotonic time sources for performance measurement.
//
// Use [Get] for the process-wide clock. Its [AwakeTimeSinceBoot.Now] reports
// milliseconds since boot and stops ticking while the device sleeps, that is,
// while the device cannot run the code being measured. It never goes
// backwards, regardless of wall-clock, time zone or daylight saving changes.
//
// [AwakeTimeSinceBoot.NowNanos] is read from a different counter than Now.
// The two values have different origins and are not guaranteed to stay
// consistent with each other (for example across a suspend). Never subtract
// one from the other.
package clock

import "time"

// MonotonicClock reports time in milliseconds. Successive calls never return
// a smaller value.
type MonotonicClock interface {
	Now() int64
}

// MonotonicNanoClock reports time in nanoseconds. Successive calls never
// return a smaller value.
type MonotonicNanoClock interface {
	NowNanos() int64
}

// AwakeTimeSinceBoot is the system clock. It has no state; obtain it with Get.
type AwakeTimeSinceBoot struct{}

var (
	_ MonotonicClock     = (*AwakeTimeSinceBoot)(nil)
	_ MonotonicNanoClock = (*AwakeTimeSinceBoot)(nil)
)

var instance = &AwakeTimeSinceBoot{}

// processStart anchors the Go runtime monotonic reading. time.Since on a
// value carrying a monotonic reading ignores wall-clock changes.
var processStart = time.Now()

// Get returns the process-wide clock. Every call returns the same instance.
// It is safe for concurrent use.
func Get() *AwakeTimeSinceBoot {
	return instance
}

// Now returns milliseconds elapsed since boot, not counting time spent in
// suspend. On platforms without an uptime counter the origin is process start.
func (*AwakeTimeSinceBoot) Now() int64 {
	return uptimeMillis()
}

// NowNanos returns a nanosecond timestamp from the Go runtime monotonic clock,
// relative to process start. See the package documentation before comparing
// it with Now.
func (*AwakeTimeSinceBoot) NowNanos() int64 {
	return int64(time.Since(processStart))
}

// Since returns the time elapsed on c since startMillis, a value previously
// returned by c.Now.
func Since(c MonotonicClock, startMillis int64) time.Duration {
	return time.Duration(c.Now()-startMillis) * time.Millisecond
}

// SinceNanos is Since for nanosecond clocks.
func SinceNanos(c MonotonicNanoClock, startNanos int64) time.Duration {
	return time.Duration(c.NowNanos() - startNanos)
}

func processUptimeMillis() int64 {
	return int64(time.Since(processStart) / time.Millisecond)
}
