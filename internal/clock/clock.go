package clock

import "time"

// Clock supplies the current instant. Both the request path and the
// sweeper derive date, time of day, and weekday from it, so tests can
// pin the wall clock to exercise boundary instants.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}
