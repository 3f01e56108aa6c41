package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
)

var (
	ErrReviewRoleForbidden = errors.New("only customers can write reviews")
	ErrOrderNotDelivered   = errors.New("only delivered orders can be reviewed")
	ErrReviewAlreadyExists = errors.New("order has already been reviewed")
)

// CreateReviewCommandHandler handles the business logic for reviewing an
// order. A review is allowed only once per order, only by the customer who
// placed it, and only after delivery.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewCreateReviewCommandHandler creates a handler for review creation.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review creation command and returns the new review's id.
// Returns ErrReviewRoleForbidden for owner callers, ErrInvalidUserForOrder
// when the order belongs to another customer, ErrOrderNotDelivered before
// delivery, and ErrReviewAlreadyExists for duplicate reviews.
func (h CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if cmd.Role().IsOwner() {
		return 0, ErrReviewRoleForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if o.CustomerID() != cmd.ActingUserID() {
		return 0, ErrInvalidUserForOrder
	}

	if o.Status() != order.Delivered {
		return 0, ErrOrderNotDelivered
	}

	reviewRepo := uow.ReviewRepository()

	exists, err := reviewRepo.ExistsByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrReviewAlreadyExists
	}

	r, err := review.NewReview(cmd.OrderID(), o.StoreID(), cmd.Rating(), cmd.Content(), time.Now())
	if err != nil {
		return 0, err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return r.ID(), nil
}
