package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestNewRegisterUserCommand_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		role     user.Role
	}{
		{"empty email", "", "correcthorse", user.RoleUser},
		{"email without at sign", "not-an-email", "correcthorse", user.RoleUser},
		{"empty password", "a@b.com", "", user.RoleUser},
		{"short password", "a@b.com", "short", user.RoleUser},
		{"unknown role", "a@b.com", "correcthorse", user.Role("ROOT")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRegisterUserCommand(tt.email, tt.password, tt.role)
			require.Error(t, err)
		})
	}
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("new@example.com", "correcthorse", user.RoleUser)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	factory := new(MockUserUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	userRepo.On("GetByEmail", ctx, "new@example.com").
		Return(nil, errs.NewObjectNotFoundError("user", "new@example.com")).Once()
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*user.User)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte("correcthorse")))
			require.NoError(t, u.AssignID(7))
		}).
		Return(nil).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("taken@example.com", "correcthorse", user.RoleOwner)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	factory := new(MockUserUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	existing, err := user.RestoreUser(3, "taken@example.com", "hash", user.RoleOwner, false)
	require.NoError(t, err)
	userRepo.On("GetByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	userRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
