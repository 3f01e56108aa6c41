package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single forward path and one
// side-branch for cancellation:
//
//	Placed ──> Confirmed ──> Preparing ──> OnTheWay ──> Delivered
//	   │
//	   └──> Canceled
//
// Forward transitions are driven by the store owner; cancellation is only
// reachable from Placed. Delivered and Canceled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a customer places an order.
	Placed

	// Confirmed indicates the store owner has accepted the order.
	Confirmed

	// Preparing indicates the store is preparing the order.
	Preparing

	// OnTheWay indicates the order has left the store for delivery.
	OnTheWay

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the order was canceled while still in Placed. Terminal.
	Canceled
)

var (
	// ErrAlreadyInStatus is returned when a transition targets the order's
	// current status.
	ErrAlreadyInStatus = errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("order is already in the requested status"))

	// ErrInvalidStatusTransition is returned for any transition the state
	// machine does not explicitly permit.
	ErrInvalidStatusTransition = errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("requested status change is not allowed"))

	// ErrConfirmedOrderCannotBeCanceled is returned when cancellation is
	// requested for an order the store already confirmed.
	ErrConfirmedOrderCannotBeCanceled = errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("a confirmed order can no longer be canceled"))

	// ErrPreparingOrderCannotBeCanceled is returned when cancellation is
	// requested for an order that is being prepared.
	ErrPreparingOrderCannotBeCanceled = errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("an order in preparation can no longer be canceled"))

	// ErrDeliveredOrderCannotBeCanceled is returned when cancellation is
	// requested for an order that is out for delivery or already delivered.
	ErrDeliveredOrderCannotBeCanceled = errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("a dispatched or delivered order cannot be canceled"))
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Placed:    "ORDER_PLACED",
		Confirmed: "ORDER_CONFIRMED",
		Preparing: "ORDER_PREPARING",
		OnTheWay:  "ORDER_ON_THE_WAY",
		Delivered: "ORDER_DELIVERED",
		Canceled:  "ORDER_CANCELED",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "ORDER_PLACED",
		Confirmed: "ORDER_CONFIRMED",
		Preparing: "ORDER_PREPARING",
		OnTheWay:  "ORDER_ON_THE_WAY",
		Delivered: "ORDER_DELIVERED",
		Canceled:  "ORDER_CANCELED",
	}
}

// forwardTransitions returns the allowed forward-path targets per status.
// Cancellation is handled separately and never appears here. Terminal
// statuses have no entry.
func forwardTransitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:    {Confirmed},
		Confirmed: {Preparing},
		Preparing: {OnTheWay},
		OnTheWay:  {Delivered},
	}
}

// StatusFromString parses a wire name such as "ORDER_PLACED".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the six defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire name of the status.
// It implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the forward-path statuses reachable from s.
// The returned slice is empty for terminal statuses and never includes
// Canceled.
func (s Status) Next() []Status {
	if next, ok := forwardTransitions()[s]; ok {
		return next
	}
	return []Status{}
}

// IsUserCancelable reports whether the status is shown to the customer as
// cancelable. This is a display hint only: it includes Confirmed, while the
// transition rules reject cancellation from Confirmed. The two are
// deliberately decoupled.
func (s Status) IsUserCancelable() bool {
	return s == Placed || s == Confirmed
}

// advance transitions s to target along the forward path.
// Returns ErrInvalidStatusTransition if the pair is not in the table.
func (s Status) advance(target Status) (Status, error) {
	for _, next := range s.Next() {
		if next == target {
			return target, nil
		}
	}
	return Unknown, ErrInvalidStatusTransition
}

// cancel transitions s to Canceled.
// Only Placed orders can be canceled; later states fail with a
// state-specific error (OnTheWay and Delivered share one, matching the
// externally observed behavior).
func (s Status) cancel() (Status, error) {
	switch s {
	case Placed:
		return Canceled, nil
	case Confirmed:
		return Unknown, ErrConfirmedOrderCannotBeCanceled
	case Preparing:
		return Unknown, ErrPreparingOrderCannotBeCanceled
	case OnTheWay, Delivered:
		return Unknown, ErrDeliveredOrderCannotBeCanceled
	default:
		return Unknown, ErrInvalidStatusTransition
	}
}
