package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, 2, 3, 10000)
	require.NoError(t, err)
	return o
}

func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(10, 1, 2, 3, 10000, status)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	o, err := order.NewOrder(1, 2, 3, 10000)
	require.NoError(t, err)

	assert.Equal(t, int64(0), o.ID())
	assert.Equal(t, int64(1), o.CustomerID())
	assert.Equal(t, int64(2), o.StoreID())
	assert.Equal(t, int64(3), o.MenuID())
	assert.Equal(t, int64(10000), o.TotalPrice())
	assert.Equal(t, order.Placed, o.Status())
	require.NoError(t, o.Validate())
}

func TestNewOrder_Invalid(t *testing.T) {
	tests := []struct {
		name                                     string
		customerID, storeID, menuID, totalPrice int64
	}{
		{"zero customer", 0, 2, 3, 1000},
		{"zero store", 1, 0, 3, 1000},
		{"zero menu", 1, 2, 0, 1000},
		{"zero price", 1, 2, 3, 0},
		{"negative price", 1, 2, 3, -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewOrder(tt.customerID, tt.storeID, tt.menuID, tt.totalPrice)
			require.Error(t, err)
		})
	}
}

func TestRestoreOrder(t *testing.T) {
	o, err := order.RestoreOrder(7, 1, 2, 3, 5000, order.Preparing)
	require.NoError(t, err)
	assert.Equal(t, int64(7), o.ID())
	assert.Equal(t, order.Preparing, o.Status())

	_, err = order.RestoreOrder(0, 1, 2, 3, 5000, order.Placed)
	require.Error(t, err, "restored orders must have a persisted id")

	_, err = order.RestoreOrder(7, 1, 2, 3, 5000, order.Unknown)
	require.Error(t, err)
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_AssignID(t *testing.T) {
	o := placedOrder(t)

	require.NoError(t, o.AssignID(99))
	assert.Equal(t, int64(99), o.ID())

	require.Error(t, o.AssignID(100), "id can only be assigned once")
	require.Error(t, placedOrder(t).AssignID(0))
}

func TestOrder_ChangeStatus_ForwardPath(t *testing.T) {
	o := placedOrder(t)

	for _, next := range []order.Status{
		order.Confirmed, order.Preparing, order.OnTheWay, order.Delivered,
	} {
		require.NoError(t, o.ChangeStatus(next))
		assert.Equal(t, next, o.Status())
	}
}

func TestOrder_ChangeStatus_SkippingStagesFails(t *testing.T) {
	pairs := []struct {
		from, to order.Status
	}{
		{order.Placed, order.Preparing},
		{order.Placed, order.OnTheWay},
		{order.Placed, order.Delivered},
		{order.Confirmed, order.OnTheWay},
		{order.Confirmed, order.Delivered},
		{order.Preparing, order.Delivered},
		{order.OnTheWay, order.Confirmed},
		{order.Delivered, order.Confirmed},
		{order.Delivered, order.Placed},
		{order.Canceled, order.Confirmed},
	}

	for _, p := range pairs {
		o := orderInStatus(t, p.from)
		err := o.ChangeStatus(p.to)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition, "%s -> %s", p.from, p.to)
		assert.Equal(t, p.from, o.Status(), "status must not change on failure")
	}
}

func TestOrder_ChangeStatus_SameStatus(t *testing.T) {
	for _, s := range []order.Status{
		order.Placed, order.Confirmed, order.Preparing,
		order.OnTheWay, order.Delivered, order.Canceled,
	} {
		o := orderInStatus(t, s)
		require.ErrorIs(t, o.ChangeStatus(s), order.ErrAlreadyInStatus, s.String())
	}
}

func TestOrder_ChangeStatus_Cancellation(t *testing.T) {
	t.Run("from placed succeeds", func(t *testing.T) {
		o := placedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Canceled))
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("from confirmed fails", func(t *testing.T) {
		o := orderInStatus(t, order.Confirmed)
		require.ErrorIs(t, o.ChangeStatus(order.Canceled), order.ErrConfirmedOrderCannotBeCanceled)
	})

	t.Run("from preparing fails", func(t *testing.T) {
		o := orderInStatus(t, order.Preparing)
		require.ErrorIs(t, o.ChangeStatus(order.Canceled), order.ErrPreparingOrderCannotBeCanceled)
	})

	t.Run("from on the way fails", func(t *testing.T) {
		o := orderInStatus(t, order.OnTheWay)
		require.ErrorIs(t, o.ChangeStatus(order.Canceled), order.ErrDeliveredOrderCannotBeCanceled)
	})

	t.Run("from delivered fails", func(t *testing.T) {
		o := orderInStatus(t, order.Delivered)
		require.ErrorIs(t, o.ChangeStatus(order.Canceled), order.ErrDeliveredOrderCannotBeCanceled)
	})

	t.Run("from canceled reports already in status", func(t *testing.T) {
		o := orderInStatus(t, order.Canceled)
		require.ErrorIs(t, o.ChangeStatus(order.Canceled), order.ErrAlreadyInStatus)
	})
}

func TestOrder_ChangeStatus_InvalidTarget(t *testing.T) {
	o := placedOrder(t)
	require.Error(t, o.ChangeStatus(order.Unknown))
	require.Error(t, o.ChangeStatus(order.Status(42)))
}

func TestOrder_IsEqual(t *testing.T) {
	a := orderInStatus(t, order.Placed)
	b := orderInStatus(t, order.Delivered)

	assert.True(t, a.IsEqual(b), "same id means same order")
	assert.False(t, a.IsEqual(nil))

	unsaved := placedOrder(t)
	assert.False(t, unsaved.IsEqual(unsaved), "unsaved orders have no identity")
}
