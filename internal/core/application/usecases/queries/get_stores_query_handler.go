package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetStoresQueryHandler lists open stores from the database.
// Soft-deleted stores never appear in the listing.
type GetStoresQueryHandler struct {
	db *gorm.DB
}

// NewGetStoresQueryHandler creates a handler for store listing queries.
// Requires a GORM database connection for query execution.
func NewGetStoresQueryHandler(db *gorm.DB) GetStoresQueryHandler {
	return GetStoresQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are sorted by store id for consistent output.
func (h GetStoresQueryHandler) Handle(
	ctx context.Context,
	query GetStoresQuery,
) ([]GetStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]GetStoresQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			open_minutes,
			close_minutes,
			min_order_amount,
			notice
		FROM stores
		WHERE closed = false AND name LIKE ?
		ORDER BY id
	`, "%"+query.NameFilter()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var storeResp GetStoresQueryResponse
		var openMinutes, closeMinutes int

		err = rows.Scan(
			&storeResp.ID,
			&storeResp.Name,
			&openMinutes,
			&closeMinutes,
			&storeResp.MinOrderAmount,
			&storeResp.Notice,
		)
		if err != nil {
			return nil, err
		}

		storeResp.OpenTime, err = kernel.TimeOfDayFromMinutes(openMinutes)
		if err != nil {
			return nil, err
		}

		storeResp.CloseTime, err = kernel.TimeOfDayFromMinutes(closeMinutes)
		if err != nil {
			return nil, err
		}

		stores = append(stores, storeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
