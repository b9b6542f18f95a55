package commands

import (
	"errors"
	"time"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/domain/model/user"
	"delivery-order/internal/pkg/errs"
	"delivery-order/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrBirthDateIsInFuture = errs.NewValueIsInvalidErrorWithCause(
		"birthDate", errors.New("birth date is in the future"),
	)
)

// CreateUserCommand registers a user under a wallet address.
//
// Example:
//
//	cmd, err := NewCreateUserCommand("0x71C7...976F", user.Profile{Name: "Kim"})
//	if err != nil {
//	    return fmt.Errorf("invalid user data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateUserCommand struct {
	walletAddress kernel.WalletAddress
	profile       user.Profile

	guard guard.ConstructorGuard
}

// NewCreateUserCommand validates the wallet address and the birth date.
func NewCreateUserCommand(walletAddress string, profile user.Profile) (CreateUserCommand, error) {
	wallet, err := kernel.NewWalletAddress(walletAddress)
	if err != nil {
		return CreateUserCommand{}, err
	}

	if profile.BirthDate != nil && profile.BirthDate.After(time.Now()) {
		return CreateUserCommand{}, ErrBirthDateIsInFuture
	}

	return CreateUserCommand{
		walletAddress: wallet,
		profile:       profile,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) WalletAddress() kernel.WalletAddress {
	return c.walletAddress
}

func (c CreateUserCommand) Profile() user.Profile {
	return c.profile
}
