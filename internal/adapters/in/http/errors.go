package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// statusForError maps use case errors onto HTTP status codes.
// The concrete conflict and authorization errors are matched before the
// generic invalid-value sentinels they unwrap to.
func statusForError(err error) int {
	switch {
	case errors.Is(err, order.ErrAlreadyInStatus),
		errors.Is(err, commands.ErrReviewAlreadyExists),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		return http.StatusConflict

	case errors.Is(err, commands.ErrStatusChangeForbidden),
		errors.Is(err, commands.ErrInvalidOwnerForOrder),
		errors.Is(err, commands.ErrInvalidUserForOrder),
		errors.Is(err, commands.ErrOrderCreationForOwner),
		errors.Is(err, commands.ErrOwnerRoleRequired),
		errors.Is(err, commands.ErrNotStoreOwner),
		errors.Is(err, commands.ErrReviewRoleForbidden),
		errors.Is(err, queries.ErrOrderAccessDenied):
		return http.StatusForbidden

	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, commands.ErrInvalidInitialStatus),
		errors.Is(err, commands.ErrMinimumAmountNotMet),
		errors.Is(err, commands.ErrStoreClosed),
		errors.Is(err, commands.ErrStoreLimitReached),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status with the error message, hiding
// internals behind a generic message for unexpected failures.
func respondError(err error) (int, errorResponse) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		return status, errorJSON("internal server error")
	}
	return status, errorJSON(err.Error())
}
