//go:build !linux

package clock

func uptimeMillis() int64 {
	return processUptimeMillis()
}
