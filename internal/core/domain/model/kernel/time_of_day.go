// Package kernel contains shared value objects used across the domain model.
package kernel

import (
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a value object representing a wall-clock time of day with
// minute precision, independent of date and time zone. It is used for store
// operating hours and for the order-creation clock.
//
// TimeOfDay is immutable and safe for concurrent use. The zero value is
// midnight (00:00), which is a valid time of day.
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay creates a TimeOfDay from an hour (0-23) and minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay parses a "HH:MM" string, e.g. "09:30" or "22:00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayFromClock extracts the time of day from a time.Time in its location.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

// MinutesSinceMidnight returns the time as minutes since 00:00.
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.minutes
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// IsEqual reports whether two times of day are the same minute.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// Within reports whether t falls inside the half-open window [open, close).
// A window whose close time is earlier than its open time spans midnight:
// open 22:00 / close 02:00 contains 23:00 and 01:00 but not 02:00 or 09:00.
// t == open is inside the window; t == close is outside.
func (t TimeOfDay) Within(open, close TimeOfDay) bool {
	if open.minutes > close.minutes {
		return t.minutes >= open.minutes || t.minutes < close.minutes
	}
	return t.minutes >= open.minutes && t.minutes < close.minutes
}

// String returns the "HH:MM" representation.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimeOfDayFromMinutes restores a TimeOfDay from minutes since midnight,
// typically when reading from persistence.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes since midnight", minutes, 0, minutesPerDay-1)
	}
	return TimeOfDay{minutes: minutes}, nil
}
