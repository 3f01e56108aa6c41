// Package queries contains read-only business operations.
// Implements the Query pattern for the read side of the CQRS architecture.
// Query handlers go straight to the database instead of going through
// repositories and the unit of work.
package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/store"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderGraph bundles an order with the customer, store and menu rows it
// references, restored as domain aggregates so the view projection and its
// derived fields stay in one place.
type orderGraph struct {
	order    *order.Order
	customer *user.User
	store    *store.Store
	menu     *menu.Menu
}

// fetchOrderGraph loads the order and its referenced rows in a single join.
// Returns an errs.ObjectNotFoundError when the order id is unknown.
func fetchOrderGraph(ctx context.Context, db *gorm.DB, orderID int64) (orderGraph, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.store_id,
			o.menu_id,
			o.total_price,
			o.status,
			u.email,
			u.password_hash,
			u.role,
			u.deleted,
			s.owner_id,
			s.name,
			s.open_minutes,
			s.close_minutes,
			s.min_order_amount,
			s.notice,
			s.closed,
			m.store_id,
			m.name,
			m.price,
			m.deleted
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		JOIN stores s ON s.id = o.store_id
		JOIN menus m ON m.id = o.menu_id
		WHERE o.id = ?
	`, orderID).Row()

	var (
		id, customerID, storeID, menuID, totalPrice int64
		status                                      int

		email, passwordHash, roleName string
		userDeleted                   bool

		ownerID, minOrderAmount   int64
		storeName, notice         string
		openMinutes, closeMinutes int
		storeClosed               bool

		menuStoreID int64
		menuName    string
		menuPrice   int64
		menuDeleted bool
	)

	err := row.Scan(
		&id, &customerID, &storeID, &menuID, &totalPrice, &status,
		&email, &passwordHash, &roleName, &userDeleted,
		&ownerID, &storeName, &openMinutes, &closeMinutes, &minOrderAmount, &notice, &storeClosed,
		&menuStoreID, &menuName, &menuPrice, &menuDeleted,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return orderGraph{}, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return orderGraph{}, err
	}

	o, err := order.RestoreOrder(id, customerID, storeID, menuID, totalPrice, order.Status(status))
	if err != nil {
		return orderGraph{}, err
	}

	role, err := user.RoleFromString(roleName)
	if err != nil {
		return orderGraph{}, err
	}

	customer, err := user.RestoreUser(customerID, email, passwordHash, role, userDeleted)
	if err != nil {
		return orderGraph{}, err
	}

	openTime, err := kernel.TimeOfDayFromMinutes(openMinutes)
	if err != nil {
		return orderGraph{}, err
	}

	closeTime, err := kernel.TimeOfDayFromMinutes(closeMinutes)
	if err != nil {
		return orderGraph{}, err
	}

	st, err := store.RestoreStore(
		storeID, ownerID, storeName, openTime, closeTime, minOrderAmount, notice, storeClosed)
	if err != nil {
		return orderGraph{}, err
	}

	m, err := menu.RestoreMenu(menuID, menuStoreID, menuName, menuPrice, menuDeleted)
	if err != nil {
		return orderGraph{}, err
	}

	return orderGraph{order: o, customer: customer, store: st, menu: m}, nil
}
