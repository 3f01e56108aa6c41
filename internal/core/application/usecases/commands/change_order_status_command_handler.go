package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/usecases/views"
	"foodorder/internal/core/domain/model/order"
)

var (
	ErrStatusChangeForbidden = errors.New("only owners can advance an order; customers may only cancel")
	ErrInvalidOwnerForOrder  = errors.New("order belongs to another owner's store")
	ErrInvalidUserForOrder   = errors.New("order belongs to another customer")
)

// ChangeOrderStatusCommandHandler handles the business logic for order status
// changes. Enforces the authorization rules before delegating the actual
// transition to the order aggregate.
//
// The checks run in a fixed sequence: a customer requesting anything but a
// cancellation is rejected; an owner must own the order's store; a
// cancellation must come from the order's customer. Only then is the
// transition itself attempted, so an unauthorized caller never learns whether
// the move would have been legal.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderingUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns ErrStatusChangeForbidden when a non-owner requests a forward move,
// ErrInvalidOwnerForOrder when an owner acts on another owner's store, and
// ErrInvalidUserForOrder when a cancellation comes from a different customer.
// Transition legality errors come from the order aggregate itself.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (views.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return views.OrderView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return views.OrderView{}, err
	}

	if !cmd.Role().IsOwner() && cmd.TargetStatus() != order.Canceled {
		return views.OrderView{}, ErrStatusChangeForbidden
	}

	st, err := uow.StoreRepository().Get(ctx, o.StoreID())
	if err != nil {
		return views.OrderView{}, err
	}

	if cmd.Role().IsOwner() && !st.IsOwnedBy(cmd.ActingUserID()) {
		return views.OrderView{}, ErrInvalidOwnerForOrder
	}

	if cmd.TargetStatus() == order.Canceled && o.CustomerID() != cmd.ActingUserID() {
		return views.OrderView{}, ErrInvalidUserForOrder
	}

	if err = o.ChangeStatus(cmd.TargetStatus()); err != nil {
		return views.OrderView{}, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return views.OrderView{}, err
	}

	customer, err := uow.UserRepository().Get(ctx, o.CustomerID())
	if err != nil {
		return views.OrderView{}, err
	}

	m, err := uow.MenuRepository().Get(ctx, o.MenuID())
	if err != nil {
		return views.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderView{}, err
	}

	return views.NewOrderView(o, customer, st, m)
}
