package menu_test

import (
	"testing"

	"foodorder/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenu(t *testing.T) {
	m, err := menu.NewMenu(2, "Bulgogi Bowl", 8500)
	require.NoError(t, err)

	assert.Equal(t, int64(0), m.ID())
	assert.Equal(t, int64(2), m.StoreID())
	assert.Equal(t, "Bulgogi Bowl", m.Name())
	assert.Equal(t, int64(8500), m.Price())
	assert.False(t, m.IsDeleted())
	require.NoError(t, m.Validate())
}

func TestNewMenu_Invalid(t *testing.T) {
	_, err := menu.NewMenu(0, "name", 100)
	require.Error(t, err)

	_, err = menu.NewMenu(2, "", 100)
	require.Error(t, err)

	_, err = menu.NewMenu(2, "name", 0)
	require.Error(t, err)

	_, err = menu.NewMenu(2, "name", -100)
	require.Error(t, err)
}

func TestMenu_Validate_NotConstructed(t *testing.T) {
	var m menu.Menu
	require.ErrorIs(t, m.Validate(), menu.ErrMenuIsNotConstructed)
}

func TestRestoreMenu(t *testing.T) {
	m, err := menu.RestoreMenu(4, 2, "Bulgogi Bowl", 8500, true)
	require.NoError(t, err)
	assert.True(t, m.IsDeleted())

	_, err = menu.RestoreMenu(0, 2, "Bulgogi Bowl", 8500, false)
	require.Error(t, err)
}

func TestMenu_AssignID(t *testing.T) {
	m, err := menu.NewMenu(2, "Bulgogi Bowl", 8500)
	require.NoError(t, err)

	require.NoError(t, m.AssignID(9))
	require.Error(t, m.AssignID(10))
}
