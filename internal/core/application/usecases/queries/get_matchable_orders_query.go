package queries

import (
	"errors"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/pkg/guard"
)

var ErrGetMatchableOrdersQueryIsNotConstructed = errors.New(
	"GetMatchableOrdersQuery must be created via NewGetMatchableOrdersQuery constructor",
)

// GetMatchableOrdersQuery lists the orders a delivery person may take.
type GetMatchableOrdersQuery struct {
	walletAddress kernel.WalletAddress
	guard         guard.ConstructorGuard
}

func NewGetMatchableOrdersQuery(walletAddress string) (GetMatchableOrdersQuery, error) {
	wallet, err := kernel.NewWalletAddress(walletAddress)
	if err != nil {
		return GetMatchableOrdersQuery{}, err
	}

	return GetMatchableOrdersQuery{walletAddress: wallet, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMatchableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMatchableOrdersQueryIsNotConstructed)
}

func (q GetMatchableOrdersQuery) WalletAddress() kernel.WalletAddress {
	return q.walletAddress
}
