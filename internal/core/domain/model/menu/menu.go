// Package menu contains the Menu aggregate: a single dish a store offers.
package menu

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrMenuIsNotConstructed is returned when a Menu instance was not created
// through the NewMenu or RestoreMenu factory functions.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu")

// Menu is a dish offered by a store. Orders reference exactly one menu.
// A deleted menu stays in storage but is treated as absent by lookups.
type Menu struct {
	id      int64
	storeID int64
	name    string
	price   int64
	deleted bool

	guard guard.ConstructorGuard
}

// NewMenu creates a new menu item for a store.
func NewMenu(storeID int64, name string, price int64) (*Menu, error) {
	m := &Menu{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setStoreID(storeID),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenu reconstructs a menu item from persistence.
func RestoreMenu(id, storeID int64, name string, price int64, deleted bool) (*Menu, error) {
	m := &Menu{
		deleted: deleted,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setStoreID(storeID),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Menu was created through a factory function.
func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// ID returns the menu's persistent identifier, zero if not yet saved.
func (m *Menu) ID() int64 {
	return m.id
}

// StoreID returns the id of the store offering this menu.
func (m *Menu) StoreID() int64 {
	return m.storeID
}

// Name returns the dish name.
func (m *Menu) Name() string {
	return m.name
}

// Price returns the dish price in minor currency units.
func (m *Menu) Price() int64 {
	return m.price
}

// IsDeleted reports whether the menu has been soft-deleted.
func (m *Menu) IsDeleted() bool {
	return m.deleted
}

// Delete soft-deletes the menu item.
func (m *Menu) Delete() {
	m.deleted = true
}

// AssignID records the identifier generated by the persistence layer.
func (m *Menu) AssignID(id int64) error {
	if m.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu id", fmt.Errorf("menu %d already has an id", m.id))
	}
	return m.setID(id)
}

func (m *Menu) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu id", fmt.Errorf("%d is not a valid id", id))
	}
	m.id = id
	return nil
}

func (m *Menu) setStoreID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"store id", fmt.Errorf("%d is not a valid id", id))
	}
	m.storeID = id
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu name")
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu price", fmt.Errorf("%d is not greater than 0", price))
	}
	m.price = price
	return nil
}
