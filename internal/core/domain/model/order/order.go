package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a placed food order. It references the
// customer, the store, and the single ordered menu item by id, and owns the
// status state machine.
//
// Invariants:
//   - Status is always one of the six defined states.
//   - Customer, store, and menu references and the total price are immutable
//     after creation.
//   - The id is assigned exactly once, by the persistence layer.
//   - Status changes only happen through ChangeStatus.
type Order struct {
	// id is assigned by the persistence layer on first save; zero until then.
	id int64

	customerID int64
	storeID    int64
	menuID     int64
	totalPrice int64
	status     Status

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Placed status. The id stays zero until the
// persistence layer assigns one via AssignID.
func NewOrder(customerID, storeID, menuID, totalPrice int64) (*Order, error) {
	o := &Order{
		status: Placed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setStoreID(storeID),
		o.setMenuID(menuID),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and requires a persisted id.
func RestoreOrder(id, customerID, storeID, menuID, totalPrice int64, status Status) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStoreID(storeID),
		o.setMenuID(menuID),
		o.setTotalPrice(totalPrice),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's persistent identifier, zero if not yet saved.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// StoreID returns the id of the store the order was placed with.
func (o *Order) StoreID() int64 {
	return o.storeID
}

// MenuID returns the id of the ordered menu item.
func (o *Order) MenuID() int64 {
	return o.menuID
}

// TotalPrice returns the order total in minor currency units.
func (o *Order) TotalPrice() int64 {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsEqual compares two orders by their persistent identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// AssignID records the identifier generated by the persistence layer.
// It may be called exactly once, on an order that has no id yet.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("order %d already has an id", o.id))
	}
	return o.setID(id)
}

// ChangeStatus transitions the order to target, enforcing the state machine.
//
// Rules, in order:
//   - target must be a valid status
//   - target equal to the current status fails with ErrAlreadyInStatus
//   - Canceled is only reachable from Placed; later states fail with a
//     state-specific error
//   - any other pair must appear in the forward-path table, otherwise
//     ErrInvalidStatusTransition
func (o *Order) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if o.status == target {
		return ErrAlreadyInStatus
	}

	var (
		next Status
		err  error
	)
	if target == Canceled {
		next, err = o.status.cancel()
	} else {
		next, err = o.status.advance(target)
	}
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%d is not a valid id", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer id", fmt.Errorf("%d is not a valid id", id))
	}
	o.customerID = id
	return nil
}

func (o *Order) setStoreID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"store id", fmt.Errorf("%d is not a valid id", id))
	}
	o.storeID = id
	return nil
}

func (o *Order) setMenuID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu id", fmt.Errorf("%d is not a valid id", id))
	}
	o.menuID = id
	return nil
}

func (o *Order) setTotalPrice(totalPrice int64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total price", fmt.Errorf("%d is not greater than 0", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
