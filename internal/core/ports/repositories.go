// Package ports defines the interfaces between the application core and
// infrastructure: repositories, the unit of work, and the clock. They enable
// dependency inversion and testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/model/store"
	"foodorder/internal/core/domain/model/user"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its generated id to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns an errs.ObjectNotFoundError when
	// the id is unknown.
	Get(ctx context.Context, id int64) (*order.Order, error)
}

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store and assigns its generated id to the aggregate.
	Add(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by id, soft-deleted stores included; callers that
	// must not see closed stores check IsClosed themselves.
	Get(ctx context.Context, id int64) (*store.Store, error)

	// CountActiveByOwner returns the number of non-deleted stores the owner runs.
	CountActiveByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// UserRepository defines the persistence contract for user aggregates.
// Soft-deleted users are treated as absent by both lookups.
type UserRepository interface {
	// Add persists a new user and assigns its generated id to the aggregate.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves an active user by id.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail retrieves an active user by unique email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// MenuRepository defines the persistence contract for menu aggregates.
// Soft-deleted menus are treated as absent by Get.
type MenuRepository interface {
	// Add persists a new menu and assigns its generated id to the aggregate.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a non-deleted menu by id.
	Get(ctx context.Context, id int64) (*menu.Menu, error)
}

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	// Add persists a new review and assigns its generated id to the aggregate.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsByOrderID reports whether a review already exists for the order.
	ExistsByOrderID(ctx context.Context, orderID int64) (bool, error)
}
