package user_test

import (
	"testing"

	"foodorder/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	role, err := user.RoleFromString("USER")
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, role)
	assert.False(t, role.IsOwner())

	role, err = user.RoleFromString("OWNER")
	require.NoError(t, err)
	assert.Equal(t, user.RoleOwner, role)
	assert.True(t, role.IsOwner())

	_, err = user.RoleFromString("ADMIN")
	require.Error(t, err)

	_, err = user.RoleFromString("owner")
	require.Error(t, err)
}

func TestNewUser(t *testing.T) {
	u, err := user.NewUser("customer@example.com", "$2a$10$hash", user.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, int64(0), u.ID())
	assert.Equal(t, "customer@example.com", u.Email())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.False(t, u.IsDeleted())
	require.NoError(t, u.Validate())
}

func TestNewUser_Invalid(t *testing.T) {
	_, err := user.NewUser("", "hash", user.RoleUser)
	require.Error(t, err, "email required")

	_, err = user.NewUser("not-an-email", "hash", user.RoleUser)
	require.Error(t, err)

	_, err = user.NewUser("a@b.com", "", user.RoleUser)
	require.Error(t, err, "password hash required")

	_, err = user.NewUser("a@b.com", "hash", user.Role("ADMIN"))
	require.Error(t, err)
}

func TestUser_Validate_NotConstructed(t *testing.T) {
	var u user.User
	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
}

func TestUser_AssignIDAndDelete(t *testing.T) {
	u, err := user.NewUser("a@b.com", "hash", user.RoleOwner)
	require.NoError(t, err)

	require.NoError(t, u.AssignID(12))
	assert.Equal(t, int64(12), u.ID())
	require.Error(t, u.AssignID(13))

	u.Delete()
	assert.True(t, u.IsDeleted())
}

func TestRestoreUser(t *testing.T) {
	u, err := user.RestoreUser(3, "a@b.com", "hash", user.RoleOwner, true)
	require.NoError(t, err)
	assert.True(t, u.IsDeleted())

	_, err = user.RestoreUser(0, "a@b.com", "hash", user.RoleOwner, false)
	require.Error(t, err)
}
