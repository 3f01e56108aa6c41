// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"foodorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Ids are generated by the database; the repository writes them back onto the
// aggregate after insert.
type OrderDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID int64 `gorm:"index"`
	StoreID    int64 `gorm:"index"`
	MenuID     int64
	TotalPrice int64
	Status     int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		StoreID:    aggregate.StoreID(),
		MenuID:     aggregate.MenuID(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     int(aggregate.Status()),
	}
}

// toDomain converts a database row back into an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.StoreID,
		dto.MenuID,
		dto.TotalPrice,
		order.Status(dto.Status),
	)
}
