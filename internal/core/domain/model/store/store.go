package store

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// MaxStoresPerOwner is the number of active stores a single owner may run.
const MaxStoresPerOwner = 3

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through the NewStore or RestoreStore factory functions.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore")

// Store is the aggregate root for a food store. It carries the owner
// reference, the operating-hours window, and the minimum order amount used to
// validate order creation.
//
// Invariants:
//   - The operating window is a half-open interval [open, close) and may span
//     midnight; open and close are never equal.
//   - MinOrderAmount is never negative.
//   - A closed store is soft-deleted: it stays in storage but is treated as
//     absent by lookups.
type Store struct {
	id             int64
	ownerID        int64
	name           string
	openTime       kernel.TimeOfDay
	closeTime      kernel.TimeOfDay
	minOrderAmount int64
	notice         string
	closed         bool

	guard guard.ConstructorGuard
}

// NewStore creates a new open store for the given owner.
func NewStore(ownerID int64, name string, openTime, closeTime kernel.TimeOfDay, minOrderAmount int64, notice string) (*Store, error) {
	s := &Store{
		notice: notice,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setOwnerID(ownerID),
		s.setName(name),
		s.setHours(openTime, closeTime),
		s.setMinOrderAmount(minOrderAmount),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore reconstructs a store from persistence, including its
// soft-delete flag.
func RestoreStore(id, ownerID int64, name string, openTime, closeTime kernel.TimeOfDay, minOrderAmount int64, notice string, closed bool) (*Store, error) {
	s := &Store{
		notice: notice,
		closed: closed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setName(name),
		s.setHours(openTime, closeTime),
		s.setMinOrderAmount(minOrderAmount),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Store was created through a factory function.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// ID returns the store's persistent identifier, zero if not yet saved.
func (s *Store) ID() int64 {
	return s.id
}

// OwnerID returns the id of the owner running the store.
func (s *Store) OwnerID() int64 {
	return s.ownerID
}

// Name returns the store's display name.
func (s *Store) Name() string {
	return s.name
}

// OpenTime returns the start of the daily operating window.
func (s *Store) OpenTime() kernel.TimeOfDay {
	return s.openTime
}

// CloseTime returns the end of the daily operating window.
func (s *Store) CloseTime() kernel.TimeOfDay {
	return s.closeTime
}

// MinOrderAmount returns the minimum order total in minor currency units.
func (s *Store) MinOrderAmount() int64 {
	return s.minOrderAmount
}

// Notice returns the owner's free-form notice text.
func (s *Store) Notice() string {
	return s.notice
}

// IsClosed reports whether the store has been soft-deleted.
func (s *Store) IsClosed() bool {
	return s.closed
}

// IsOpenAt reports whether the store is operating at the given time of day.
// The window is half-open [open, close) and wrap-aware: a store with open
// 22:00 and close 02:00 is open at 23:00 and 01:00, closed at 02:00 and 09:00.
func (s *Store) IsOpenAt(t kernel.TimeOfDay) bool {
	return t.Within(s.openTime, s.closeTime)
}

// MeetsMinimumAmount reports whether an order total satisfies the store's
// minimum order amount.
func (s *Store) MeetsMinimumAmount(totalPrice int64) bool {
	return totalPrice >= s.minOrderAmount
}

// IsOwnedBy reports whether the given user id is the store's owner.
func (s *Store) IsOwnedBy(userID int64) bool {
	return s.ownerID == userID
}

// Close soft-deletes the store. Lookups treat closed stores as absent.
func (s *Store) Close() {
	s.closed = true
}

// AssignID records the identifier generated by the persistence layer.
func (s *Store) AssignID(id int64) error {
	if s.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"store id", fmt.Errorf("store %d already has an id", s.id))
	}
	return s.setID(id)
}

func (s *Store) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"store id", fmt.Errorf("%d is not a valid id", id))
	}
	s.id = id
	return nil
}

func (s *Store) setOwnerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"owner id", fmt.Errorf("%d is not a valid id", id))
	}
	s.ownerID = id
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("store name")
	}
	s.name = name
	return nil
}

func (s *Store) setHours(openTime, closeTime kernel.TimeOfDay) error {
	// An equal open and close time would make the half-open window empty.
	if openTime.IsEqual(closeTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"operating hours", fmt.Errorf("open time %s equals close time", openTime))
	}
	s.openTime = openTime
	s.closeTime = closeTime
	return nil
}

func (s *Store) setMinOrderAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"minimum order amount", fmt.Errorf("%d is negative", amount))
	}
	s.minOrderAmount = amount
	return nil
}
