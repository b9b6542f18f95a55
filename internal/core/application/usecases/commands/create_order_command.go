package commands

import (
	"errors"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order on
// behalf of the user owning walletAddress.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(wallet, "fragile", product, transportation,
//	    departure, sender, destination, receiver)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	walletAddress  kernel.WalletAddress
	detail         string
	product        order.Product
	transportation order.Transportation
	departure      kernel.Location
	sender         kernel.Participant
	destination    kernel.Location
	receiver       kernel.Participant

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the wallet address and that every value
// object was constructed. All failures are returned together.
func NewCreateOrderCommand(
	walletAddress string,
	detail string,
	product order.Product,
	transportation order.Transportation,
	departure kernel.Location,
	sender kernel.Participant,
	destination kernel.Location,
	receiver kernel.Participant,
) (CreateOrderCommand, error) {
	wallet, walletErr := kernel.NewWalletAddress(walletAddress)

	if err := errors.Join(
		walletErr,
		product.Validate(),
		transportation.Validate(),
		departure.Validate(),
		sender.Validate(),
		destination.Validate(),
		receiver.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		walletAddress:  wallet,
		detail:         detail,
		product:        product,
		transportation: transportation,
		departure:      departure,
		sender:         sender,
		destination:    destination,
		receiver:       receiver,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) WalletAddress() kernel.WalletAddress {
	return c.walletAddress
}

func (c CreateOrderCommand) Detail() string {
	return c.detail
}

func (c CreateOrderCommand) Product() order.Product {
	return c.product
}

func (c CreateOrderCommand) Transportation() order.Transportation {
	return c.transportation
}

func (c CreateOrderCommand) Departure() kernel.Location {
	return c.departure
}

func (c CreateOrderCommand) Sender() kernel.Participant {
	return c.sender
}

func (c CreateOrderCommand) Destination() kernel.Location {
	return c.destination
}

func (c CreateOrderCommand) Receiver() kernel.Participant {
	return c.receiver
}
