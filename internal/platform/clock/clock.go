package clock

import "time"

// Clock stamps session start and end times.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant. The countdown never reads the
// clock, so a frozen clock only pins StartedAt and EndedAt.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
