// Package userrepo persists users with GORM.
package userrepo

import (
	"time"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is a row of the users table.
type UserDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	WalletAddress  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(100)"`
	Email          string    `gorm:"type:varchar(255)"`
	Contact        string    `gorm:"type:varchar(50)"`
	BirthDate      *time.Time
	ProfileImageID string    `gorm:"type:varchar(255)"`
	JoinDate       time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	profile := u.Profile()
	return UserDTO{
		ID:             u.ID().Bytes(),
		WalletAddress:  u.WalletAddress().String(),
		Name:           profile.Name,
		Email:          profile.Email,
		Contact:        profile.Contact,
		BirthDate:      profile.BirthDate,
		ProfileImageID: profile.ProfileImageID,
		JoinDate:       u.JoinDate(),
	}
}

func toDomain(row UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, row.WalletAddress, user.Profile{
		Name:           row.Name,
		Email:          row.Email,
		Contact:        row.Contact,
		BirthDate:      row.BirthDate,
		ProfileImageID: row.ProfileImageID,
	}, row.JoinDate)
}
