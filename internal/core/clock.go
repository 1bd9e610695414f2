package core

import "time"

// Clock supplies the current time. The simulation reads it to measure the
// self-collision grace period in wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
