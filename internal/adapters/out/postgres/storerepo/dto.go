// Package storerepo provides data transfer objects and mapping functions for
// store persistence.
package storerepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/store"
)

// StoreDTO represents the database structure for persisting store aggregates.
// Business hours are stored as minutes since midnight so the overnight wrap is
// a plain pair of smallints.
type StoreDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	OwnerID        int64 `gorm:"index"`
	Name           string
	OpenMinutes    int `gorm:"type:smallint"`
	CloseMinutes   int `gorm:"type:smallint"`
	MinOrderAmount int64
	Notice         string
	Closed         bool
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store domain aggregate to its database representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:             aggregate.ID(),
		OwnerID:        aggregate.OwnerID(),
		Name:           aggregate.Name(),
		OpenMinutes:    aggregate.OpenTime().MinutesSinceMidnight(),
		CloseMinutes:   aggregate.CloseTime().MinutesSinceMidnight(),
		MinOrderAmount: aggregate.MinOrderAmount(),
		Notice:         aggregate.Notice(),
		Closed:         aggregate.IsClosed(),
	}
}

// toDomain converts a database row back into a store aggregate using
// RestoreStore.
func toDomain(dto StoreDTO) (*store.Store, error) {
	openTime, err := kernel.TimeOfDayFromMinutes(dto.OpenMinutes)
	if err != nil {
		return nil, err
	}

	closeTime, err := kernel.TimeOfDayFromMinutes(dto.CloseMinutes)
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(
		dto.ID,
		dto.OwnerID,
		dto.Name,
		openTime,
		closeTime,
		dto.MinOrderAmount,
		dto.Notice,
		dto.Closed,
	)
}
