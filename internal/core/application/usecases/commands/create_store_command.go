package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand represents a request by an owner to open a new store
// with its business hours and minimum order amount.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	ownerID        int64
	role           user.Role
	name           string
	openTime       kernel.TimeOfDay
	closeTime      kernel.TimeOfDay
	minOrderAmount int64
	notice         string

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to open a new store.
// Business-hour consistency is checked later by the store aggregate; the
// command only validates the shape of its inputs.
func NewCreateStoreCommand(
	ownerID int64,
	role user.Role,
	name string,
	openTime, closeTime kernel.TimeOfDay,
	minOrderAmount int64,
	notice string,
) (CreateStoreCommand, error) {
	storeCommand := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		storeCommand.setOwnerID(ownerID),
		storeCommand.setRole(role),
		storeCommand.setName(name),
		storeCommand.setMinOrderAmount(minOrderAmount),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	storeCommand.openTime = openTime
	storeCommand.closeTime = closeTime
	storeCommand.notice = notice

	return storeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStoreCommandIsNotConstructed if validation fails.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// OwnerID returns the id of the user opening the store.
func (c CreateStoreCommand) OwnerID() int64 {
	return c.ownerID
}

// Role returns the acting user's role.
func (c CreateStoreCommand) Role() user.Role {
	return c.role
}

// Name returns the store name.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// OpenTime returns the daily opening time.
func (c CreateStoreCommand) OpenTime() kernel.TimeOfDay {
	return c.openTime
}

// CloseTime returns the daily closing time.
func (c CreateStoreCommand) CloseTime() kernel.TimeOfDay {
	return c.closeTime
}

// MinOrderAmount returns the minimum order total the store accepts.
func (c CreateStoreCommand) MinOrderAmount() int64 {
	return c.minOrderAmount
}

// Notice returns the free-form store notice text.
func (c CreateStoreCommand) Notice() string {
	return c.notice
}

func (c *CreateStoreCommand) setOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidError("ownerID")
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateStoreCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateStoreCommand) setMinOrderAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("minOrderAmount")
	}

	c.minOrderAmount = amount
	return nil
}
