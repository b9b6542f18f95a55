package ports

import (
	"context"

	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/core/dto"
)

// OrderRepository defines the persistence contract for orders.
type OrderRepository interface {
	// CreateOrder writes the order row together with its product,
	// transportation, departure (with sender) and destination (with receiver)
	// rows, all sharing the new order id. Either every row is written or none.
	//
	// Example:
	//   id, err := repo.CreateOrder(ctx, o)
	//   if err != nil {
	//       return 0, fmt.Errorf("create order: %w", err)
	//   }
	CreateOrder(ctx context.Context, aggregate *order.Order) (int64, error)

	// FindAllCreatedOrDeliveredOrderDetailByOrderIDs returns the details of the
	// given orders whose status is in the detail status set. Unknown ids and
	// orders in other statuses are skipped; the result is never nil.
	FindAllCreatedOrDeliveredOrderDetailByOrderIDs(ctx context.Context, orderIDs []int64) ([]dto.OrderDetail, error)

	// FindAllMatchableOrderByWalletAddress returns orders the owner of
	// walletAddress may take: matchable status, nobody assigned yet, and not
	// requested by that wallet.
	FindAllMatchableOrderByWalletAddress(ctx context.Context, walletAddress string) ([]dto.MatchableOrder, error)

	// UpdateDeliveryPersonAtOrder assigns the delivery person to the order.
	// Returns *errs.ObjectNotFoundError when the order does not exist.
	UpdateDeliveryPersonAtOrder(ctx context.Context, deliveryPerson order.DeliveryPerson) error

	// CountByStatus returns the number of orders per status. Statuses without
	// orders are absent from the map.
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}

// OrderParticipantRepository reads the sender and receiver side of orders.
type OrderParticipantRepository interface {
	// FindSenderReceiverLocationAndPhoneNumberByOrderID returns the departure
	// and destination coordinates with the sender and receiver phones.
	// Returns *errs.ObjectNotFoundError carrying orderID when no such order exists.
	FindSenderReceiverLocationAndPhoneNumberByOrderID(ctx context.Context, orderID int64) (dto.OrderSenderReceiver, error)
}
