package kernel

import "time"

// Clock supplies the current time to the domain. Every timestamp the core
// writes (last_modified, placed_date) and every staleness cutoff comes from a
// Clock so tests can simulate the passage of time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC, truncated to microseconds so that
// values survive a round trip through PostgreSQL timestamps unchanged.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
