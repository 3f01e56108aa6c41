package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStoreReviewsQueryHandler lists a store's reviews from the database.
// Newest reviews come first.
type GetStoreReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreReviewsQueryHandler creates a handler for review listing queries.
// Requires a GORM database connection for query execution.
func NewGetStoreReviewsQueryHandler(db *gorm.DB) GetStoreReviewsQueryHandler {
	return GetStoreReviewsQueryHandler{db: db}
}

// Handle executes the review listing query.
func (h GetStoreReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreReviewsQuery,
) ([]GetStoreReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reviews := make([]GetStoreReviewsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			rating,
			content,
			created_at
		FROM reviews
		WHERE store_id = ? AND rating BETWEEN ? AND ?
		ORDER BY created_at DESC, id DESC
	`, query.StoreID(), query.MinRating(), query.MaxRating()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reviewResp GetStoreReviewsQueryResponse

		err = rows.Scan(
			&reviewResp.ID,
			&reviewResp.OrderID,
			&reviewResp.Rating,
			&reviewResp.Content,
			&reviewResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reviews = append(reviews, reviewResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
