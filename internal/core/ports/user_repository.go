package ports

import (
	"context"

	"delivery-order/internal/core/domain/model/user"
)

type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error

	// GetByWalletAddress returns *errs.ObjectNotFoundError when no user owns the wallet.
	GetByWalletAddress(ctx context.Context, walletAddress string) (*user.User, error)
}
