package queries

import (
	"context"

	"foodorder/internal/core/application/usecases/views"

	"gorm.io/gorm"
)

// GetOwnerOrderQueryHandler reads a single order for the store side.
// Only the owner of the store the order was placed with may see it.
type GetOwnerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerOrderQueryHandler creates a handler for owner order reads.
// Requires a GORM database connection for query execution.
func NewGetOwnerOrderQueryHandler(db *gorm.DB) GetOwnerOrderQueryHandler {
	return GetOwnerOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order projection.
// Returns ErrOrderAccessDenied when the caller is not an owner or the order's
// store belongs to someone else.
func (h GetOwnerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerOrderQuery,
) (views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return views.OrderView{}, err
	}

	if !query.Role().IsOwner() {
		return views.OrderView{}, ErrOrderAccessDenied
	}

	graph, err := fetchOrderGraph(ctx, h.db, query.OrderID())
	if err != nil {
		return views.OrderView{}, err
	}

	if !graph.store.IsOwnedBy(query.OwnerID()) {
		return views.OrderView{}, ErrOrderAccessDenied
	}

	return views.NewOrderView(graph.order, graph.customer, graph.store, graph.menu)
}
