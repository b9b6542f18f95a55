package queries

import (
	"context"

	"delivery-order/internal/core/dto"
)

type GetOrderDetailsQueryHandler struct {
	reader OrderDetailReader
}

func NewGetOrderDetailsQueryHandler(reader OrderDetailReader) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{reader: reader}
}

// Handle returns the orders in a detail status; unknown ids are skipped.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) ([]dto.OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if len(query.OrderIDs()) == 0 {
		return []dto.OrderDetail{}, nil
	}

	return h.reader.FindAllCreatedOrDeliveredOrderDetailByOrderIDs(ctx, query.OrderIDs())
}
