package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/application/usecases/views"

	"gorm.io/gorm"
)

var ErrOrderAccessDenied = errors.New("order is not accessible to this user")

// GetCustomerOrderQueryHandler reads a single order for the customer side.
// The identity check runs before the role check, so a customer id mismatch is
// reported the same way regardless of the caller's role.
type GetCustomerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrderQueryHandler creates a handler for customer order reads.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrderQueryHandler(db *gorm.DB) GetCustomerOrderQueryHandler {
	return GetCustomerOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order projection.
// Returns ErrOrderAccessDenied when the order belongs to another customer or
// the caller holds the owner role.
func (h GetCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderQuery,
) (views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return views.OrderView{}, err
	}

	graph, err := fetchOrderGraph(ctx, h.db, query.OrderID())
	if err != nil {
		return views.OrderView{}, err
	}

	if graph.order.CustomerID() != query.UserID() {
		return views.OrderView{}, ErrOrderAccessDenied
	}

	if query.Role().IsOwner() {
		return views.OrderView{}, ErrOrderAccessDenied
	}

	return views.NewOrderView(graph.order, graph.customer, graph.store, graph.menu)
}
