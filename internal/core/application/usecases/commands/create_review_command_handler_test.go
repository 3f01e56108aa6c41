package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	reviewRepo *MockReviewRepository
	orderRepo  *MockOrderRepository
	uow        *MockReviewUoW
	factory    *MockReviewUoWFactory
}

func newReviewMocks(t *testing.T, ctx context.Context, status order.Status) reviewMocks {
	t.Helper()
	m := reviewMocks{
		reviewRepo: new(MockReviewRepository),
		orderRepo:  new(MockOrderRepository),
		uow:        new(MockReviewUoW),
		factory:    new(MockReviewUoWFactory),
	}

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Maybe()
	m.uow.On("Rollback", ctx).Return(nil).Maybe()
	m.uow.On("Commit", ctx).Return(nil).Maybe()
	m.uow.On("OrderRepository").Return(m.orderRepo).Maybe()
	m.uow.On("ReviewRepository").Return(m.reviewRepo).Maybe()

	m.orderRepo.On("Get", ctx, testOrderID).
		Return(orderFixture(t, testOrderID, testCustomerID, testStoreID, testMenuID, status), nil).Maybe()

	return m
}

func TestNewCreateReviewCommand_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, -1, 6} {
		_, err := commands.NewCreateReviewCommand(testCustomerID, user.RoleUser, testOrderID, rating, "")
		require.Error(t, err)
	}
}

func TestCreateReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	m := newReviewMocks(t, ctx, order.Delivered)

	m.reviewRepo.On("ExistsByOrderID", ctx, testOrderID).Return(false, nil).Once()
	m.reviewRepo.On("Add", ctx, mock.AnythingOfType("*review.Review")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*review.Review)
			assert.Equal(t, testOrderID, r.OrderID())
			assert.Equal(t, testStoreID, r.StoreID())
			assert.Equal(t, 5, r.Rating())
			require.NoError(t, r.AssignID(12))
		}).
		Return(nil).Once()

	cmd, err := commands.NewCreateReviewCommand(
		testCustomerID, user.RoleUser, testOrderID, 5, "arrived hot, would order again")
	require.NoError(t, err)

	h := commands.NewCreateReviewCommandHandler(m.factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	m.reviewRepo.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_OwnerForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateReviewCommand(testOwnerID, user.RoleOwner, testOrderID, 4, "")
	require.NoError(t, err)

	factory := new(MockReviewUoWFactory)
	h := commands.NewCreateReviewCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrReviewRoleForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateReviewCommandHandler_Handle_WrongCustomer(t *testing.T) {
	ctx := t.Context()
	m := newReviewMocks(t, ctx, order.Delivered)

	cmd, err := commands.NewCreateReviewCommand(int64(11), user.RoleUser, testOrderID, 4, "")
	require.NoError(t, err)

	h := commands.NewCreateReviewCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidUserForOrder)
}

func TestCreateReviewCommandHandler_Handle_NotDelivered(t *testing.T) {
	for _, status := range []order.Status{order.Placed, order.Confirmed, order.Preparing, order.OnTheWay, order.Canceled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			m := newReviewMocks(t, ctx, status)

			cmd, err := commands.NewCreateReviewCommand(testCustomerID, user.RoleUser, testOrderID, 4, "")
			require.NoError(t, err)

			h := commands.NewCreateReviewCommandHandler(m.factory)
			_, err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, commands.ErrOrderNotDelivered)
			m.reviewRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateReviewCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	m := newReviewMocks(t, ctx, order.Delivered)

	m.reviewRepo.On("ExistsByOrderID", ctx, testOrderID).Return(true, nil).Once()

	cmd, err := commands.NewCreateReviewCommand(testCustomerID, user.RoleUser, testOrderID, 5, "")
	require.NoError(t, err)

	h := commands.NewCreateReviewCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrReviewAlreadyExists)
	m.reviewRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
