package commands

import (
	"context"

	"delivery-order/internal/core/domain/model/order"
)

// CreateOrderCommandHandler resolves the requester and stores the order with
// all its sub-records in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no user owns cmd.WalletAddress()
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requester, err := uow.UserRepository().GetByWalletAddress(ctx, cmd.WalletAddress().String())
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(
		requester.ID(),
		cmd.Detail(),
		cmd.Product(),
		cmd.Transportation(),
		cmd.Departure(),
		cmd.Sender(),
		cmd.Destination(),
		cmd.Receiver(),
	)
	if err != nil {
		return 0, err
	}

	orderID, err := uow.OrderRepository().CreateOrder(ctx, aggregate)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
