package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/menu"
)

var ErrNotStoreOwner = errors.New("store belongs to another owner")

// CreateMenuCommandHandler handles the business logic for adding a menu item.
// Only the owner of the store may extend its menu.
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuCommandHandler creates a handler for menu creation.
func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu creation command and returns the new menu's id.
// Returns ErrOwnerRoleRequired for non-owner callers and ErrNotStoreOwner
// when the store belongs to someone else.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if !cmd.Role().IsOwner() {
		return 0, ErrOwnerRoleRequired
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	st, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return 0, err
	}

	if !st.IsOwnedBy(cmd.ActingUserID()) {
		return 0, ErrNotStoreOwner
	}

	m, err := menu.NewMenu(cmd.StoreID(), cmd.Name(), cmd.Price())
	if err != nil {
		return 0, err
	}

	if err = uow.MenuRepository().Add(ctx, m); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return m.ID(), nil
}
