// Package clock supplies monotonic millisecond timestamps for event timing.
package clock

import "time"

// Clock produces millisecond timestamps relative to its construction,
// read from the runtime's monotonic clock so the stream is immune to
// wall-clock adjustments.
type Clock struct {
	start time.Time
}

// New returns a clock anchored at the current instant.
func New() *Clock {
	return &Clock{start: time.Now()}
}

// NowMillis returns the milliseconds elapsed since the clock was created.
func (c *Clock) NowMillis() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}
