package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
)

var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler handles the business logic for user signup.
// Hashes the password with bcrypt and persists the new account.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new user's id.
// Returns ErrEmailAlreadyRegistered when an active account already uses the
// email address.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return 0, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	u, err := user.NewUser(cmd.Email(), string(hash), cmd.Role())
	if err != nil {
		return 0, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return u.ID(), nil
}
