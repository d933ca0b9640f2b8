package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/ewar/internal/common/clock Clock

// Clock supplies event timestamps and inactivity cutoffs
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock in UTC
type DefaultClock struct{}

// New creates a system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current UTC time truncated to whole microseconds so it
// survives a JSON round trip unchanged
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
