// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence.
package reviewrepo

import (
	"time"

	"foodorder/internal/core/domain/model/review"
)

// ReviewDTO represents the database structure for persisting review
// aggregates. The unique index on OrderID backs the one-review-per-order rule.
type ReviewDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"uniqueIndex"`
	StoreID   int64 `gorm:"index"`
	Rating    int   `gorm:"type:smallint"`
	Content   string
	CreatedAt time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        aggregate.ID(),
		OrderID:   aggregate.OrderID(),
		StoreID:   aggregate.StoreID(),
		Rating:    aggregate.Rating(),
		Content:   aggregate.Content(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database row back into a review aggregate using
// RestoreReview.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	return review.RestoreReview(
		dto.ID,
		dto.OrderID,
		dto.StoreID,
		dto.Rating,
		dto.Content,
		dto.CreatedAt,
	)
}
