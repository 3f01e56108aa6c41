package commands_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/store"
	"foodorder/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

// fixedClock pins the business-hours check to a known time of day.
type fixedClock struct{ at kernel.TimeOfDay }

func (c fixedClock) Now() kernel.TimeOfDay { return c.at }

func at(t *testing.T, hour, minute int) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

// dayStore is open 09:00-21:00 with a 5000 minimum.
func dayStore(t *testing.T, id, ownerID int64) *store.Store {
	t.Helper()
	st, err := store.RestoreStore(id, ownerID, "Pasta Place",
		at(t, 9, 0), at(t, 21, 0), 5000, "", false)
	require.NoError(t, err)
	return st
}

// nightStore is open 22:00-02:00, wrapping past midnight.
func nightStore(t *testing.T, id, ownerID int64) *store.Store {
	t.Helper()
	st, err := store.RestoreStore(id, ownerID, "Night Noodles",
		at(t, 22, 0), at(t, 2, 0), 5000, "", false)
	require.NoError(t, err)
	return st
}

func customerFixture(t *testing.T, id int64) *user.User {
	t.Helper()
	u, err := user.RestoreUser(id, "customer@example.com", "hash", user.RoleUser, false)
	require.NoError(t, err)
	return u
}

func menuFixture(t *testing.T, id, storeID int64) *menu.Menu {
	t.Helper()
	m, err := menu.RestoreMenu(id, storeID, "Carbonara", 12000, false)
	require.NoError(t, err)
	return m
}

func orderFixture(t *testing.T, id, customerID, storeID, menuID int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, customerID, storeID, menuID, 12000, status)
	require.NoError(t, err)
	return o
}
