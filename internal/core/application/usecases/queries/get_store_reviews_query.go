package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetStoreReviewsQueryIsNotConstructed = errors.New(
	"GetStoreReviewsQuery must be created via NewGetStoreReviewsQuery constructor",
)

// GetStoreReviewsQuery lists a store's reviews within a rating range.
type GetStoreReviewsQuery struct {
	storeID   int64
	minRating int
	maxRating int

	guard guard.ConstructorGuard
}

// NewGetStoreReviewsQuery creates a review listing query.
// Both rating bounds are inclusive and must lie on the review scale.
func NewGetStoreReviewsQuery(storeID int64, minRating, maxRating int) (GetStoreReviewsQuery, error) {
	query := GetStoreReviewsQuery{guard: guard.NewConstructorGuard()}

	if storeID <= 0 {
		return GetStoreReviewsQuery{}, errs.NewValueIsInvalidError("storeID")
	}
	if minRating < review.MinRating || minRating > review.MaxRating {
		return GetStoreReviewsQuery{}, errs.NewValueIsOutOfRangeError(
			"minRating", minRating, review.MinRating, review.MaxRating)
	}
	if maxRating < review.MinRating || maxRating > review.MaxRating {
		return GetStoreReviewsQuery{}, errs.NewValueIsOutOfRangeError(
			"maxRating", maxRating, review.MinRating, review.MaxRating)
	}
	if minRating > maxRating {
		return GetStoreReviewsQuery{}, errs.NewValueIsInvalidError("rating range")
	}

	query.storeID = storeID
	query.minRating = minRating
	query.maxRating = maxRating

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreReviewsQueryIsNotConstructed if validation fails.
func (q GetStoreReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreReviewsQueryIsNotConstructed)
}

// StoreID returns the id of the store whose reviews are listed.
func (q GetStoreReviewsQuery) StoreID() int64 {
	return q.storeID
}

// MinRating returns the inclusive lower rating bound.
func (q GetStoreReviewsQuery) MinRating() int {
	return q.minRating
}

// MaxRating returns the inclusive upper rating bound.
func (q GetStoreReviewsQuery) MaxRating() int {
	return q.maxRating
}

// GetStoreReviewsQueryResponse represents one review in the listing.
type GetStoreReviewsQueryResponse struct {
	ID        int64
	OrderID   int64
	Rating    int
	Content   string
	CreatedAt time.Time
}
