// Package userrepo provides data transfer objects and mapping functions for
// user persistence.
package userrepo

import (
	"foodorder/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email stays unique even across soft-deleted rows, matching the
// registration rule that an address is never reusable.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	Deleted      bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Deleted:      aggregate.IsDeleted(),
	}
}

// toDomain converts a database row back into a user aggregate using
// RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.ID, dto.Email, dto.PasswordHash, role, dto.Deleted)
}
