package device

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock at compile time.
var _ Clock = RealClock{}
