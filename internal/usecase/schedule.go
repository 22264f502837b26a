package usecase

import "time"

// Daily ordering boundaries. The kitchen needs a firm deadline for
// same-day preparation, so these are part of the domain rather than
// deployment configuration.
const (
	// orderCutoff closes same-day ordering. At or after this instant
	// today is no longer orderable.
	orderCutoff = 10 * time.Hour

	// cancelLock closes same-day cancellation. Between cancelLock and
	// completionTime the order is being prepared and can be neither
	// cancelled nor completed.
	cancelLock = 10 * time.Hour

	// completionTime marks a same-day order as logically finished even
	// if the sweep has not run yet.
	completionTime = 12 * time.Hour
)

// timeOfDay returns the offset of t from its local midnight.
func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
