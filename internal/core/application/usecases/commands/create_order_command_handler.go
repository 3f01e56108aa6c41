package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/usecases/views"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

var (
	ErrOrderCreationForOwner = errors.New("owners cannot place orders")
	ErrInvalidInitialStatus  = errors.New("orders can only be created in the placed status")
	ErrMinimumAmountNotMet   = errors.New("order total is below the store minimum amount")
	ErrStoreClosed           = errors.New("store is closed at this time")
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Authorizes the acting customer, validates store constraints and persists the
// new order in the placed status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	cmd, _ := NewCreateOrderCommand(customerID, user.RoleUser, storeID, menuID, order.Placed, 12000)
//
//	view, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrMinimumAmountNotMet):
//	    // ask the customer to add more items
//	case errors.Is(err, ErrStoreClosed):
//	    // store is outside business hours
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderingUoWFactory for transactional persistence and a Clock
// for the business-hours check.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order placement command.
// Checks, in order: the acting user is not an owner, the requested initial
// status is placed, the store, customer and menu exist, the total meets the
// store minimum, and the store is open at the current time of day. On success
// the order is persisted and a full projection of it is returned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (views.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return views.OrderView{}, err
	}

	if cmd.Role().IsOwner() {
		return views.OrderView{}, ErrOrderCreationForOwner
	}

	if cmd.Status() != order.Placed {
		return views.OrderView{}, ErrInvalidInitialStatus
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	st, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return views.OrderView{}, err
	}

	customer, err := uow.UserRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return views.OrderView{}, err
	}

	m, err := uow.MenuRepository().Get(ctx, cmd.MenuID())
	if err != nil {
		return views.OrderView{}, err
	}

	if !st.MeetsMinimumAmount(cmd.TotalPrice()) {
		return views.OrderView{}, ErrMinimumAmountNotMet
	}

	if !st.IsOpenAt(h.clock.Now()) {
		return views.OrderView{}, ErrStoreClosed
	}

	o, err := order.NewOrder(cmd.CustomerID(), cmd.StoreID(), cmd.MenuID(), cmd.TotalPrice())
	if err != nil {
		return views.OrderView{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return views.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderView{}, err
	}

	return views.NewOrderView(o, customer, st, m)
}
