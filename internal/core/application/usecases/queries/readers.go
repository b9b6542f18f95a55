// Package queries contains read operations of the CQRS architecture. Query
// handlers do not open transactions; they read through the repositories
// directly.
package queries

import (
	"context"

	"delivery-order/internal/core/dto"
)

type (
	// OrderDetailReader is the read side of ports.OrderRepository used by GetOrderDetailsQueryHandler.
	OrderDetailReader interface {
		FindAllCreatedOrDeliveredOrderDetailByOrderIDs(ctx context.Context, orderIDs []int64) ([]dto.OrderDetail, error)
	}

	// MatchableOrderReader is used by GetMatchableOrdersQueryHandler.
	MatchableOrderReader interface {
		FindAllMatchableOrderByWalletAddress(ctx context.Context, walletAddress string) ([]dto.MatchableOrder, error)
	}

	// SenderReceiverReader is used by GetOrderSenderReceiverQueryHandler.
	SenderReceiverReader interface {
		FindSenderReceiverLocationAndPhoneNumberByOrderID(ctx context.Context, orderID int64) (dto.OrderSenderReceiver, error)
	}
)
