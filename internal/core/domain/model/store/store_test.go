package store_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(t *testing.T, hour, minute int) kernel.TimeOfDay {
	t.Helper()
	v, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return v
}

func dayStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore(1, "Kimbap Heaven", tod(t, 8, 0), tod(t, 18, 0), 5000, "")
	require.NoError(t, err)
	return s
}

func TestNewStore(t *testing.T) {
	s := dayStore(t)

	assert.Equal(t, int64(0), s.ID())
	assert.Equal(t, int64(1), s.OwnerID())
	assert.Equal(t, "Kimbap Heaven", s.Name())
	assert.Equal(t, int64(5000), s.MinOrderAmount())
	assert.False(t, s.IsClosed())
	require.NoError(t, s.Validate())
}

func TestNewStore_Invalid(t *testing.T) {
	open, close := tod(t, 8, 0), tod(t, 18, 0)

	_, err := store.NewStore(0, "name", open, close, 0, "")
	require.Error(t, err, "owner id required")

	_, err = store.NewStore(1, "", open, close, 0, "")
	require.Error(t, err, "name required")

	_, err = store.NewStore(1, "name", open, open, 0, "")
	require.Error(t, err, "open time must differ from close time")

	_, err = store.NewStore(1, "name", open, close, -1, "")
	require.Error(t, err, "minimum amount must not be negative")
}

func TestStore_Validate_NotConstructed(t *testing.T) {
	var s store.Store
	require.ErrorIs(t, s.Validate(), store.ErrStoreIsNotConstructed)
}

func TestStore_IsOpenAt(t *testing.T) {
	s := dayStore(t)

	assert.True(t, s.IsOpenAt(tod(t, 10, 0)))
	assert.True(t, s.IsOpenAt(tod(t, 8, 0)), "opening minute is open")
	assert.False(t, s.IsOpenAt(tod(t, 18, 0)), "closing minute is closed")
	assert.False(t, s.IsOpenAt(tod(t, 7, 59)))
}

func TestStore_IsOpenAt_Overnight(t *testing.T) {
	s, err := store.NewStore(1, "Night Owl", tod(t, 22, 0), tod(t, 2, 0), 5000, "")
	require.NoError(t, err)

	assert.True(t, s.IsOpenAt(tod(t, 23, 0)))
	assert.True(t, s.IsOpenAt(tod(t, 1, 0)))
	assert.True(t, s.IsOpenAt(tod(t, 22, 0)))
	assert.False(t, s.IsOpenAt(tod(t, 2, 0)))
	assert.False(t, s.IsOpenAt(tod(t, 9, 0)))
}

func TestStore_MeetsMinimumAmount(t *testing.T) {
	s := dayStore(t)

	assert.True(t, s.MeetsMinimumAmount(5000))
	assert.True(t, s.MeetsMinimumAmount(10000))
	assert.False(t, s.MeetsMinimumAmount(3000))
}

func TestStore_Ownership(t *testing.T) {
	s := dayStore(t)

	assert.True(t, s.IsOwnedBy(1))
	assert.False(t, s.IsOwnedBy(2))
}

func TestStore_CloseAndRestore(t *testing.T) {
	s := dayStore(t)
	require.NoError(t, s.AssignID(5))
	s.Close()
	assert.True(t, s.IsClosed())

	restored, err := store.RestoreStore(5, 1, "Kimbap Heaven", tod(t, 8, 0), tod(t, 18, 0), 5000, "", true)
	require.NoError(t, err)
	assert.True(t, restored.IsClosed())
}
