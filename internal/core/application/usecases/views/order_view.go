// Package views contains the response projections shared by the order
// commands and queries.
package views

import (
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/store"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
)

// OrderView is the projection returned by every order read, create, and
// status-change operation. Besides the raw order attributes it carries two
// derived fields:
//
//   - CanUserCancel is a display hint: true for Placed and Confirmed orders,
//     even though the transition layer rejects cancellation from Confirmed.
//   - AvailableStatusChanges lists the forward-path statuses reachable from
//     the current one; it is empty for terminal states and never contains
//     Canceled.
type OrderView struct {
	OrderID       int64
	CustomerID    int64
	CustomerEmail string
	StoreID       int64
	StoreName     string
	MenuID        int64
	MenuName      string
	MenuPrice     int64
	Status        order.Status
	TotalPrice    int64

	CanUserCancel          bool
	AvailableStatusChanges []order.Status
}

// NewOrderView assembles the projection from the order aggregate and the
// entities it references. A mismatch between the order's references and the
// supplied entities is a programming error, not a user-facing failure, and
// is reported as an invalid-value error.
func NewOrderView(o *order.Order, customer *user.User, st *store.Store, m *menu.Menu) (OrderView, error) {
	if err := o.Validate(); err != nil {
		return OrderView{}, err
	}
	if err := customer.Validate(); err != nil {
		return OrderView{}, err
	}
	if err := st.Validate(); err != nil {
		return OrderView{}, err
	}
	if err := m.Validate(); err != nil {
		return OrderView{}, err
	}

	if customer.ID() != o.CustomerID() {
		return OrderView{}, errs.NewValueIsInvalidError("order customer reference")
	}
	if st.ID() != o.StoreID() {
		return OrderView{}, errs.NewValueIsInvalidError("order store reference")
	}
	if m.ID() != o.MenuID() {
		return OrderView{}, errs.NewValueIsInvalidError("order menu reference")
	}

	return OrderView{
		OrderID:       o.ID(),
		CustomerID:    customer.ID(),
		CustomerEmail: customer.Email(),
		StoreID:       st.ID(),
		StoreName:     st.Name(),
		MenuID:        m.ID(),
		MenuName:      m.Name(),
		MenuPrice:     m.Price(),
		Status:        o.Status(),
		TotalPrice:    o.TotalPrice(),

		CanUserCancel:          o.Status().IsUserCancelable(),
		AvailableStatusChanges: o.Status().Next(),
	}, nil
}
