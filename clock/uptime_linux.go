//go:build linux

package clock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// uptimeMillis reads CLOCK_MONOTONIC, which on Linux (and Android) counts
// from boot and does not advance while the system is suspended.
func uptimeMillis() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// CLOCK_MONOTONIC is mandatory since Linux 2.6.
		panic(fmt.Sprintf("clock: CLOCK_MONOTONIC unavailable: %v", err))
	}
	return ts.Nano() / int64(time.Millisecond)
}
