// Package userrepo persists accounts and their opaque session tokens.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"farmaya/internal/core/domain/model/account"
	"farmaya/internal/core/domain/model/kernel"
)

// UserDTO represents the database structure for registered accounts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	Name         string
	Phone        string
	Address      string
	Role         int `gorm:"index"`
	PasswordHash string
	Latitude     *float64
	Longitude    *float64
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

// SessionDTO represents one opaque bearer token.
type SessionDTO struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(user *account.User) UserDTO {
	latitude, longitude := user.Coordinates()
	return UserDTO{
		ID:           user.ID().Bytes(),
		Email:        user.Email(),
		Name:         user.Name(),
		Phone:        user.Phone(),
		Address:      user.Address(),
		Role:         int(user.Role()),
		PasswordHash: user.PasswordHash(),
		Latitude:     latitude,
		Longitude:    longitude,
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(
		id,
		dto.Email,
		dto.Name,
		dto.Phone,
		dto.Address,
		account.Role(dto.Role),
		dto.PasswordHash,
		dto.Latitude,
		dto.Longitude,
	)
}
