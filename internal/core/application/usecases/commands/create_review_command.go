package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents a request by a customer to review one of
// their delivered orders.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	actingUserID int64
	role         user.Role
	orderID      int64
	rating       int
	content      string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to review an order.
// Validates that the ids are positive and the rating falls within the
// review scale.
func NewCreateReviewCommand(
	actingUserID int64,
	role user.Role,
	orderID int64,
	rating int,
	content string,
) (CreateReviewCommand, error) {
	reviewCommand := CreateReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setActingUserID(actingUserID),
		reviewCommand.setRole(role),
		reviewCommand.setOrderID(orderID),
		reviewCommand.setRating(rating),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	reviewCommand.content = content

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateReviewCommandIsNotConstructed if validation fails.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ActingUserID returns the id of the user writing the review.
func (c CreateReviewCommand) ActingUserID() int64 {
	return c.actingUserID
}

// Role returns the acting user's role.
func (c CreateReviewCommand) Role() user.Role {
	return c.role
}

// OrderID returns the id of the reviewed order.
func (c CreateReviewCommand) OrderID() int64 {
	return c.orderID
}

// Rating returns the star rating.
func (c CreateReviewCommand) Rating() int {
	return c.rating
}

// Content returns the free-form review text.
func (c CreateReviewCommand) Content() string {
	return c.content
}

func (c *CreateReviewCommand) setActingUserID(actingUserID int64) error {
	if actingUserID <= 0 {
		return errs.NewValueIsInvalidError("actingUserID")
	}

	c.actingUserID = actingUserID
	return nil
}

func (c *CreateReviewCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateReviewCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}

	c.rating = rating
	return nil
}
