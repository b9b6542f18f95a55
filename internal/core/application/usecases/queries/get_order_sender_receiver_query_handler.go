package queries

import (
	"context"

	"delivery-order/internal/core/dto"
)

// GetOrderSenderReceiverQueryHandler returns *errs.ObjectNotFoundError for an
// unknown order id.
type GetOrderSenderReceiverQueryHandler struct {
	reader SenderReceiverReader
}

func NewGetOrderSenderReceiverQueryHandler(reader SenderReceiverReader) GetOrderSenderReceiverQueryHandler {
	return GetOrderSenderReceiverQueryHandler{reader: reader}
}

func (h GetOrderSenderReceiverQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSenderReceiverQuery,
) (dto.OrderSenderReceiver, error) {
	if err := query.Validate(); err != nil {
		return dto.OrderSenderReceiver{}, err
	}

	return h.reader.FindSenderReceiverLocationAndPhoneNumberByOrderID(ctx, query.OrderID())
}
