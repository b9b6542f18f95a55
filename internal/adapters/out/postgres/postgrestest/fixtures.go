package postgrestest

import (
	"time"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/core/domain/model/user"
)

// NewUser builds a user owning wallet.
func NewUser(wallet string) (*user.User, error) {
	birth := time.Date(2000, 10, 12, 0, 0, 0, 0, time.UTC)
	return user.NewUser(wallet, user.Profile{
		Name:           "Kim",
		Email:          "kim@example.com",
		Contact:        "01012345678",
		BirthDate:      &birth,
		ProfileImageID: "111",
	}, time.Date(2023, 10, 12, 0, 0, 0, 0, time.UTC))
}

// NewOrder builds an order for requester with zero sized product, no
// transport mode, departure at (0, 0) and destination at (37.5, 112).
func NewOrder(requester kernel.UUID, detail string) (*order.Order, error) {
	product, err := order.NewProduct(0, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	transportation, err := order.NewTransportation(map[order.Mode]int{})
	if err != nil {
		return nil, err
	}
	departure, err := kernel.NewLocation(0, 0, "departure detail")
	if err != nil {
		return nil, err
	}
	sender, err := kernel.NewParticipant("Sender", "01012345678")
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewLocation(37.5, 112, "destination detail")
	if err != nil {
		return nil, err
	}
	receiver, err := kernel.NewParticipant("Receiver", "01087654321")
	if err != nil {
		return nil, err
	}

	return order.NewOrder(requester, detail, product, transportation, departure, sender, destination, receiver)
}
