package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/store"
)

var (
	ErrOwnerRoleRequired = errors.New("owner role is required for this operation")
	ErrStoreLimitReached = errors.New("owner already runs the maximum number of stores")
)

// CreateStoreCommandHandler handles the business logic for opening a store.
// Only owners may open stores, and each owner is capped at
// store.MaxStoresPerOwner active stores.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store creation.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store creation command and returns the new store's id.
// Returns ErrOwnerRoleRequired for non-owner callers and ErrStoreLimitReached
// when the owner already runs the maximum number of active stores.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (int64, error) {
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

	storeRepo := uow.StoreRepository()

	if _, err := uow.UserRepository().Get(ctx, cmd.OwnerID()); err != nil {
		return 0, err
	}

	count, err := storeRepo.CountActiveByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return 0, err
	}
	if count >= store.MaxStoresPerOwner {
		return 0, ErrStoreLimitReached
	}

	st, err := store.NewStore(
		cmd.OwnerID(),
		cmd.Name(),
		cmd.OpenTime(),
		cmd.CloseTime(),
		cmd.MinOrderAmount(),
		cmd.Notice(),
	)
	if err != nil {
		return 0, err
	}

	if err = storeRepo.Add(ctx, st); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return st.ID(), nil
}
