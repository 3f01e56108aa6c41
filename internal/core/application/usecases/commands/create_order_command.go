package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new food order.
// Carries the acting customer's identity and role alongside the order details
// so the handler can enforce who may order and in which initial status.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, user.RoleUser, storeID, menuID, order.Placed, 12000)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	view, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	role       user.Role
	storeID    int64
	menuID     int64
	status     order.Status
	totalPrice int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that all ids are positive, the role and status are known values,
// and the total price is positive. Returns an error if any validation fails.
func NewCreateOrderCommand(
	customerID int64,
	role user.Role,
	storeID int64,
	menuID int64,
	status order.Status,
	totalPrice int64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setRole(role),
		orderCommand.setStoreID(storeID),
		orderCommand.setMenuID(menuID),
		orderCommand.setStatus(status),
		orderCommand.setTotalPrice(totalPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the customer placing the order.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Role returns the acting user's role.
func (c CreateOrderCommand) Role() user.Role {
	return c.role
}

// StoreID returns the id of the store the order is placed with.
func (c CreateOrderCommand) StoreID() int64 {
	return c.storeID
}

// MenuID returns the id of the ordered menu item.
func (c CreateOrderCommand) MenuID() int64 {
	return c.menuID
}

// Status returns the requested initial order status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// TotalPrice returns the order total in minor currency units.
func (c CreateOrderCommand) TotalPrice() int64 {
	return c.totalPrice
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidError("customerID")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateOrderCommand) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsInvalidError("storeID")
	}

	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setMenuID(menuID int64) error {
	if menuID <= 0 {
		return errs.NewValueIsInvalidError("menuID")
	}

	c.menuID = menuID
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice int64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}

	c.totalPrice = totalPrice
	return nil
}
