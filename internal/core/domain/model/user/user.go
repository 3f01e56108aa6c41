// Package user contains the User aggregate and the Role enumeration.
// Authentication itself lives at the transport boundary; the domain only
// stores credentials and exposes identity and role.
package user

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an account in the system: either a customer or a store owner,
// identified by a unique email. A deleted user stays in storage but is
// treated as absent by lookups.
type User struct {
	id           int64
	email        string
	passwordHash string
	role         Role
	deleted      bool

	guard guard.ConstructorGuard
}

// NewUser creates a new account with an already-hashed password.
func NewUser(email, passwordHash string, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id int64, email, passwordHash string, role Role, deleted bool) (*User, error) {
	u := &User{
		deleted: deleted,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a factory function.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's persistent identifier, zero if not yet saved.
func (u *User) ID() int64 {
	return u.id
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's authorization role.
func (u *User) Role() Role {
	return u.role
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.deleted
}

// Delete soft-deletes the account.
func (u *User) Delete() {
	u.deleted = true
}

// AssignID records the identifier generated by the persistence layer.
func (u *User) AssignID(id int64) error {
	if u.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"user id", fmt.Errorf("user %d already has an id", u.id))
	}
	return u.setID(id)
}

func (u *User) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"user id", fmt.Errorf("%d is not a valid id", id))
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
