package commands

import (
	"context"
	"time"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/domain/model/user"
)

// CreateUserCommandHandler stores a new user with a generated id joined now.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	now        func() time.Time
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the id given to the new user.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := user.NewUser(cmd.WalletAddress().String(), cmd.Profile(), h.now())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
