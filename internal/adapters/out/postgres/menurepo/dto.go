// Package menurepo provides data transfer objects and mapping functions for
// menu persistence.
package menurepo

import (
	"foodorder/internal/core/domain/model/menu"
)

// MenuDTO represents the database structure for persisting menu aggregates.
type MenuDTO struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	StoreID int64 `gorm:"index"`
	Name    string
	Price   int64
	Deleted bool
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// fromDomain converts a menu domain aggregate to its database representation.
func fromDomain(aggregate *menu.Menu) MenuDTO {
	return MenuDTO{
		ID:      aggregate.ID(),
		StoreID: aggregate.StoreID(),
		Name:    aggregate.Name(),
		Price:   aggregate.Price(),
		Deleted: aggregate.IsDeleted(),
	}
}

// toDomain converts a database row back into a menu aggregate using
// RestoreMenu.
func toDomain(dto MenuDTO) (*menu.Menu, error) {
	return menu.RestoreMenu(dto.ID, dto.StoreID, dto.Name, dto.Price, dto.Deleted)
}
