package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetStoresQueryIsNotConstructed = errors.New(
	"GetStoresQuery must be created via NewGetStoresQuery constructor",
)

// GetStoresQuery lists open stores, optionally filtered by a name fragment.
type GetStoresQuery struct {
	nameFilter string

	guard guard.ConstructorGuard
}

// NewGetStoresQuery creates a store listing query. An empty nameFilter
// matches every open store.
func NewGetStoresQuery(nameFilter string) GetStoresQuery {
	return GetStoresQuery{
		nameFilter: nameFilter,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoresQueryIsNotConstructed if validation fails.
func (q GetStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetStoresQueryIsNotConstructed)
}

// NameFilter returns the name fragment to match, or "" for all stores.
func (q GetStoresQuery) NameFilter() string {
	return q.nameFilter
}

// GetStoresQueryResponse represents one open store in the listing.
type GetStoresQueryResponse struct {
	ID             int64
	Name           string
	OpenTime       kernel.TimeOfDay
	CloseTime      kernel.TimeOfDay
	MinOrderAmount int64
	Notice         string
}
