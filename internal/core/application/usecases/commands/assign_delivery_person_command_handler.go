package commands

import (
	"context"
)

// AssignDeliveryPersonCommandHandler sets the delivery person of an order.
// An unknown order id surfaces as *errs.ObjectNotFoundError.
type AssignDeliveryPersonCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignDeliveryPersonCommandHandler(uowFactory OrderUoWFactory) AssignDeliveryPersonCommandHandler {
	return AssignDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPersonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateDeliveryPersonAtOrder(ctx, cmd.DeliveryPerson()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
