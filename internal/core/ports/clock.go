package ports

import (
	"foodorder/internal/core/domain/model/kernel"
)

// Clock supplies the current time of day for store-hours validation.
// It is an interface so tests can pin the clock to a fixed time.
type Clock interface {
	Now() kernel.TimeOfDay
}
