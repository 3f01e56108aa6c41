package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// CreateMenuCommand represents a request by a store owner to add a menu item
// to one of their stores.
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	actingUserID int64
	role         user.Role
	storeID      int64
	name         string
	price        int64

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to add a menu item.
// Validates that the ids and price are positive and the name is present.
func NewCreateMenuCommand(
	actingUserID int64,
	role user.Role,
	storeID int64,
	name string,
	price int64,
) (CreateMenuCommand, error) {
	menuCommand := CreateMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuCommand.setActingUserID(actingUserID),
		menuCommand.setRole(role),
		menuCommand.setStoreID(storeID),
		menuCommand.setName(name),
		menuCommand.setPrice(price),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return menuCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMenuCommandIsNotConstructed if validation fails.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// ActingUserID returns the id of the user adding the menu item.
func (c CreateMenuCommand) ActingUserID() int64 {
	return c.actingUserID
}

// Role returns the acting user's role.
func (c CreateMenuCommand) Role() user.Role {
	return c.role
}

// StoreID returns the id of the store the item belongs to.
func (c CreateMenuCommand) StoreID() int64 {
	return c.storeID
}

// Name returns the menu item name.
func (c CreateMenuCommand) Name() string {
	return c.name
}

// Price returns the menu item price in minor currency units.
func (c CreateMenuCommand) Price() int64 {
	return c.price
}

func (c *CreateMenuCommand) setActingUserID(actingUserID int64) error {
	if actingUserID <= 0 {
		return errs.NewValueIsInvalidError("actingUserID")
	}

	c.actingUserID = actingUserID
	return nil
}

func (c *CreateMenuCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateMenuCommand) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return errs.NewValueIsInvalidError("storeID")
	}

	c.storeID = storeID
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}
