package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetCustomerOrderQueryIsNotConstructed = errors.New(
	"GetCustomerOrderQuery must be created via NewGetCustomerOrderQuery constructor",
)

// GetCustomerOrderQuery retrieves a single order on behalf of the customer
// who placed it.
type GetCustomerOrderQuery struct {
	orderID int64
	userID  int64
	role    user.Role

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderQuery creates a query for a customer's own order.
func NewGetCustomerOrderQuery(orderID, userID int64, role user.Role) (GetCustomerOrderQuery, error) {
	query := GetCustomerOrderQuery{guard: guard.NewConstructorGuard()}

	if orderID <= 0 {
		return GetCustomerOrderQuery{}, errs.NewValueIsInvalidError("orderID")
	}
	if userID <= 0 {
		return GetCustomerOrderQuery{}, errs.NewValueIsInvalidError("userID")
	}
	if err := role.Validate(); err != nil {
		return GetCustomerOrderQuery{}, err
	}

	query.orderID = orderID
	query.userID = userID
	query.role = role

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrderQueryIsNotConstructed if validation fails.
func (q GetCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderQueryIsNotConstructed)
}

// OrderID returns the id of the requested order.
func (q GetCustomerOrderQuery) OrderID() int64 {
	return q.orderID
}

// UserID returns the id of the requesting user.
func (q GetCustomerOrderQuery) UserID() int64 {
	return q.userID
}

// Role returns the requesting user's role.
func (q GetCustomerOrderQuery) Role() user.Role {
	return q.role
}
