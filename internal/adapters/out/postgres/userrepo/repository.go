package userrepo

import (
	"context"
	"errors"

	"delivery-order/internal/core/domain/model/user"
	"delivery-order/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a user. A wallet address already in use fails on the unique index.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	row := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&row).Error
}

// GetByWalletAddress loads the owner of walletAddress.
func (r *GormUserRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*user.User, error) {
	var row UserDTO
	err := r.db.WithContext(ctx).First(&row, "wallet_address = ?", walletAddress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("walletAddress", walletAddress)
		}
		return nil, err
	}

	return toDomain(row)
}
