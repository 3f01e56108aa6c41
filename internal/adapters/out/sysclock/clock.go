// Package sysclock adapts the system clock to the ports.Clock interface.
package sysclock

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// SystemClock reports the wall-clock time of day in the server's local zone.
type SystemClock struct{}

// NewSystemClock creates a system-backed clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current time of day.
func (SystemClock) Now() kernel.TimeOfDay {
	return kernel.TimeOfDayFromClock(time.Now())
}
