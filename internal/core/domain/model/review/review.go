// Package review contains the Review aggregate: a customer's rating of a
// delivered order. Review creation is gated on the order having reached
// Delivered; that gate lives in the use-case layer.
package review

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	// MinRating is the lowest allowed rating.
	MinRating = 1

	// MaxRating is the highest allowed rating.
	MaxRating = 5
)

// ErrReviewIsNotConstructed is returned when a Review instance was not
// created through the NewReview or RestoreReview factory functions.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

// Review is a customer's rating and comment for a single delivered order.
// At most one review exists per order.
type Review struct {
	id        int64
	orderID   int64
	storeID   int64
	rating    int
	content   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewReview creates a review for an order at the given store.
func NewReview(orderID, storeID int64, rating int, content string, createdAt time.Time) (*Review, error) {
	r := &Review{
		content:   content,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setOrderID(orderID),
		r.setStoreID(storeID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(id, orderID, storeID int64, rating int, content string, createdAt time.Time) (*Review, error) {
	r := &Review{
		content:   content,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setStoreID(storeID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Review was created through a factory function.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ID returns the review's persistent identifier, zero if not yet saved.
func (r *Review) ID() int64 {
	return r.id
}

// OrderID returns the id of the reviewed order.
func (r *Review) OrderID() int64 {
	return r.orderID
}

// StoreID returns the id of the store the reviewed order was placed with.
func (r *Review) StoreID() int64 {
	return r.storeID
}

// Rating returns the rating, between MinRating and MaxRating inclusive.
func (r *Review) Rating() int {
	return r.rating
}

// Content returns the free-form review text.
func (r *Review) Content() string {
	return r.content
}

// CreatedAt returns the creation timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// AssignID records the identifier generated by the persistence layer.
func (r *Review) AssignID(id int64) error {
	if r.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"review id", fmt.Errorf("review %d already has an id", r.id))
	}
	return r.setID(id)
}

func (r *Review) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"review id", fmt.Errorf("%d is not a valid id", id))
	}
	r.id = id
	return nil
}

func (r *Review) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%d is not a valid id", id))
	}
	r.orderID = id
	return nil
}

func (r *Review) setStoreID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"store id", fmt.Errorf("%d is not a valid id", id))
	}
	r.storeID = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}
