package queries

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSignInQueryIsNotConstructed = errors.New(
	"SignInQuery must be created via NewSignInQuery constructor",
)

// SignInQuery authenticates a user by email and password.
type SignInQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewSignInQuery creates an authentication query.
func NewSignInQuery(email, password string) (SignInQuery, error) {
	query := SignInQuery{guard: guard.NewConstructorGuard()}

	if email == "" || !strings.Contains(email, "@") {
		return SignInQuery{}, errs.NewValueIsInvalidError("email")
	}
	if password == "" {
		return SignInQuery{}, errs.NewValueIsRequiredError("password")
	}

	query.email = email
	query.password = password

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSignInQueryIsNotConstructed if validation fails.
func (q SignInQuery) Validate() error {
	return q.guard.Validate(ErrSignInQueryIsNotConstructed)
}

// Email returns the email to authenticate.
func (q SignInQuery) Email() string {
	return q.email
}

// Password returns the plain-text password to verify.
func (q SignInQuery) Password() string {
	return q.password
}

// SignInQueryResponse carries the authenticated identity and a signed token.
type SignInQueryResponse struct {
	UserID int64
	Role   string
	Token  string
}
