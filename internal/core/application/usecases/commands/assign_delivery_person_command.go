package commands

import (
	"errors"

	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/pkg/guard"
)

var ErrAssignDeliveryPersonCommandIsNotConstructed = errors.New(
	"AssignDeliveryPersonCommand must be created via NewAssignDeliveryPersonCommand constructor",
)

// AssignDeliveryPersonCommand records who delivers an order.
type AssignDeliveryPersonCommand struct {
	deliveryPerson order.DeliveryPerson

	guard guard.ConstructorGuard
}

func NewAssignDeliveryPersonCommand(orderID int64, walletAddress string) (AssignDeliveryPersonCommand, error) {
	deliveryPerson, err := order.NewDeliveryPerson(orderID, walletAddress)
	if err != nil {
		return AssignDeliveryPersonCommand{}, err
	}

	return AssignDeliveryPersonCommand{
		deliveryPerson: deliveryPerson,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPersonCommandIsNotConstructed)
}

func (c AssignDeliveryPersonCommand) DeliveryPerson() order.DeliveryPerson {
	return c.deliveryPerson
}
