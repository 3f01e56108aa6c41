package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Owners advance orders through the fulfillment stages,
// customers cancel their own placed orders.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	actingUserID int64
	role         user.Role
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the ids are positive and the role and target status are
// known values. Returns an error if any validation fails.
func NewChangeOrderStatusCommand(
	orderID int64,
	actingUserID int64,
	role user.Role,
	targetStatus order.Status,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setActingUserID(actingUserID),
		statusCommand.setRole(role),
		statusCommand.setTargetStatus(targetStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the id of the order to change.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// ActingUserID returns the id of the user requesting the change.
func (c ChangeOrderStatusCommand) ActingUserID() int64 {
	return c.actingUserID
}

// Role returns the acting user's role.
func (c ChangeOrderStatusCommand) Role() user.Role {
	return c.role
}

// TargetStatus returns the status the order should move to.
func (c ChangeOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setActingUserID(actingUserID int64) error {
	if actingUserID <= 0 {
		return errs.NewValueIsInvalidError("actingUserID")
	}

	c.actingUserID = actingUserID
	return nil
}

func (c *ChangeOrderStatusCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *ChangeOrderStatusCommand) setTargetStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.targetStatus = status
	return nil
}
