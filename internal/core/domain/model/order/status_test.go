package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Placed, order.Confirmed, order.Preparing,
		order.OnTheWay, order.Delivered, order.Canceled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ORDER_PLACED", order.Placed.String())
	assert.Equal(t, "ORDER_CONFIRMED", order.Confirmed.String())
	assert.Equal(t, "ORDER_PREPARING", order.Preparing.String())
	assert.Equal(t, "ORDER_ON_THE_WAY", order.OnTheWay.String())
	assert.Equal(t, "ORDER_DELIVERED", order.Delivered.String())
	assert.Equal(t, "ORDER_CANCELED", order.Canceled.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	s, err := order.StatusFromString("ORDER_ON_THE_WAY")
	require.NoError(t, err)
	assert.Equal(t, order.OnTheWay, s)

	_, err = order.StatusFromString("UNKNOWN")
	require.Error(t, err)

	_, err = order.StatusFromString("order_placed")
	require.Error(t, err)
}

func TestStatus_Next(t *testing.T) {
	assert.Equal(t, []order.Status{order.Confirmed}, order.Placed.Next())
	assert.Equal(t, []order.Status{order.Preparing}, order.Confirmed.Next())
	assert.Equal(t, []order.Status{order.OnTheWay}, order.Preparing.Next())
	assert.Equal(t, []order.Status{order.Delivered}, order.OnTheWay.Next())

	assert.Empty(t, order.Delivered.Next())
	assert.Empty(t, order.Canceled.Next())
	assert.Empty(t, order.Unknown.Next())
}

func TestStatus_IsUserCancelable(t *testing.T) {
	assert.True(t, order.Placed.IsUserCancelable())
	// Confirmed shows as cancelable even though the transition layer rejects
	// cancellation from Confirmed.
	assert.True(t, order.Confirmed.IsUserCancelable())

	assert.False(t, order.Preparing.IsUserCancelable())
	assert.False(t, order.OnTheWay.IsUserCancelable())
	assert.False(t, order.Delivered.IsUserCancelable())
	assert.False(t, order.Canceled.IsUserCancelable())
}
