package queries

import (
	"context"

	"delivery-order/internal/core/dto"
)

type GetMatchableOrdersQueryHandler struct {
	reader MatchableOrderReader
}

func NewGetMatchableOrdersQueryHandler(reader MatchableOrderReader) GetMatchableOrdersQueryHandler {
	return GetMatchableOrdersQueryHandler{reader: reader}
}

func (h GetMatchableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMatchableOrdersQuery,
) ([]dto.MatchableOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.FindAllMatchableOrderByWalletAddress(ctx, query.WalletAddress().String())
}
