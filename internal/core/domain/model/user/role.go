package user

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role is the authorization role attached to every authenticated request.
// The core never authenticates; it only authorizes based on the role and
// numeric identity passed to it.
type Role string

const (
	// RoleUser is a customer: places orders, cancels them, writes reviews.
	RoleUser Role = "USER"

	// RoleOwner is a store operator: manages stores and menus and drives
	// forward order-status progress.
	RoleOwner Role = "OWNER"
)

// RoleFromString parses a role name, accepting exactly "USER" or "OWNER".
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleOwner:
		return RoleOwner, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the Role is one of the two defined roles.
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleOwner:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// IsOwner reports whether the role is the store-operator role.
func (r Role) IsOwner() bool {
	return r == RoleOwner
}

// String returns the role's wire name.
func (r Role) String() string {
	return string(r)
}
