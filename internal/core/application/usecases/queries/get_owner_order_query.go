package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetOwnerOrderQueryIsNotConstructed = errors.New(
	"GetOwnerOrderQuery must be created via NewGetOwnerOrderQuery constructor",
)

// GetOwnerOrderQuery retrieves a single order on behalf of the owner of the
// store it was placed with.
type GetOwnerOrderQuery struct {
	orderID int64
	ownerID int64
	role    user.Role

	guard guard.ConstructorGuard
}

// NewGetOwnerOrderQuery creates a query for an incoming store order.
func NewGetOwnerOrderQuery(orderID, ownerID int64, role user.Role) (GetOwnerOrderQuery, error) {
	query := GetOwnerOrderQuery{guard: guard.NewConstructorGuard()}

	if orderID <= 0 {
		return GetOwnerOrderQuery{}, errs.NewValueIsInvalidError("orderID")
	}
	if ownerID <= 0 {
		return GetOwnerOrderQuery{}, errs.NewValueIsInvalidError("ownerID")
	}
	if err := role.Validate(); err != nil {
		return GetOwnerOrderQuery{}, err
	}

	query.orderID = orderID
	query.ownerID = ownerID
	query.role = role

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOwnerOrderQueryIsNotConstructed if validation fails.
func (q GetOwnerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerOrderQueryIsNotConstructed)
}

// OrderID returns the id of the requested order.
func (q GetOwnerOrderQuery) OrderID() int64 {
	return q.orderID
}

// OwnerID returns the id of the requesting owner.
func (q GetOwnerOrderQuery) OwnerID() int64 {
	return q.ownerID
}

// Role returns the requesting user's role.
func (q GetOwnerOrderQuery) Role() user.Role {
	return q.role
}
