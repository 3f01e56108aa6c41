package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/store"
	"foodorder/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storeCommandFixture(t *testing.T, role user.Role) commands.CreateStoreCommand {
	t.Helper()
	cmd, err := commands.NewCreateStoreCommand(
		99, role, "Pasta Place", at(t, 9, 0), at(t, 21, 0), 5000, "closed on holidays")
	require.NoError(t, err)
	return cmd
}

func TestCreateStoreCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := storeCommandFixture(t, user.RoleOwner)

	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockStoreUoW)
	factory := new(MockStoreUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoreRepository").Return(storeRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	owner, err := user.RestoreUser(99, "owner@example.com", "hash", user.RoleOwner, false)
	require.NoError(t, err)
	userRepo.On("Get", ctx, int64(99)).Return(owner, nil).Once()
	storeRepo.On("CountActiveByOwner", ctx, int64(99)).Return(int64(2), nil).Once()
	storeRepo.On("Add", ctx, mock.AnythingOfType("*store.Store")).
		Run(func(args mock.Arguments) {
			st := args.Get(1).(*store.Store)
			require.NoError(t, st.AssignID(5))
		}).
		Return(nil).Once()

	h := commands.NewCreateStoreCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	storeRepo.AssertExpectations(t)
}

func TestCreateStoreCommandHandler_Handle_NonOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	cmd := storeCommandFixture(t, user.RoleUser)

	factory := new(MockStoreUoWFactory)
	h := commands.NewCreateStoreCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOwnerRoleRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateStoreCommandHandler_Handle_LimitReached(t *testing.T) {
	ctx := t.Context()
	cmd := storeCommandFixture(t, user.RoleOwner)

	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockStoreUoW)
	factory := new(MockStoreUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoreRepository").Return(storeRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	owner, err := user.RestoreUser(99, "owner@example.com", "hash", user.RoleOwner, false)
	require.NoError(t, err)
	userRepo.On("Get", ctx, int64(99)).Return(owner, nil).Once()
	storeRepo.On("CountActiveByOwner", ctx, int64(99)).
		Return(int64(store.MaxStoresPerOwner), nil).Once()

	h := commands.NewCreateStoreCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrStoreLimitReached)
	storeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
