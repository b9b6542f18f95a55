package http

import (
	"errors"
	"time"

	"delivery-order/internal/core/application/usecases/commands"
	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/core/domain/model/user"
)

type CreateUserRequest struct {
	WalletAddress  string     `json:"walletAddress" validate:"required,max=255"`
	Name           string     `json:"name" validate:"max=100"`
	Email          string     `json:"email" validate:"omitempty,email"`
	Contact        string     `json:"contact" validate:"max=50"`
	BirthDate      *time.Time `json:"birthDate"`
	ProfileImageID string     `json:"profileImageId" validate:"max=255"`
}

func (r CreateUserRequest) profile() user.Profile {
	return user.Profile{
		Name:           r.Name,
		Email:          r.Email,
		Contact:        r.Contact,
		BirthDate:      r.BirthDate,
		ProfileImageID: r.ProfileImageID,
	}
}

type ProductRequest struct {
	Width  float64 `json:"width" validate:"gte=0"`
	Length float64 `json:"length" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

type PlaceRequest struct {
	X      float64 `json:"x" validate:"gte=-90,lte=90"`
	Y      float64 `json:"y" validate:"gte=-180,lte=180"`
	Detail string  `json:"detail" validate:"max=255"`
}

type ContactRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required"`
}

type CreateOrderRequest struct {
	WalletAddress  string         `json:"walletAddress" validate:"required,max=255"`
	Detail         string         `json:"detail" validate:"max=1000"`
	Product        ProductRequest `json:"product"`
	Transportation map[string]int `json:"transportation" validate:"dive,keys,oneof=walking bicycle scooter bike car truck,endkeys,oneof=0 1"` //nolint:lll // validator tag
	Departure      PlaceRequest   `json:"departure"`
	Sender         ContactRequest `json:"sender"`
	Destination    PlaceRequest   `json:"destination"`
	Receiver       ContactRequest `json:"receiver"`
}

// command builds the domain values and the command. Every invalid part is
// reported at once.
func (r CreateOrderRequest) command() (commands.CreateOrderCommand, error) {
	product, productErr := order.NewProduct(r.Product.Width, r.Product.Length, r.Product.Height, r.Product.Weight)

	modes := make(map[order.Mode]int, len(r.Transportation))
	for mode, flag := range r.Transportation {
		modes[order.Mode(mode)] = flag
	}
	transportation, transportationErr := order.NewTransportation(modes)

	departure, departureErr := kernel.NewLocation(
		kernel.Coordinate(r.Departure.X), kernel.Coordinate(r.Departure.Y), r.Departure.Detail)
	sender, senderErr := kernel.NewParticipant(r.Sender.Name, r.Sender.Phone)
	destination, destinationErr := kernel.NewLocation(
		kernel.Coordinate(r.Destination.X), kernel.Coordinate(r.Destination.Y), r.Destination.Detail)
	receiver, receiverErr := kernel.NewParticipant(r.Receiver.Name, r.Receiver.Phone)

	if err := errors.Join(
		productErr, transportationErr, departureErr, senderErr, destinationErr, receiverErr,
	); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		r.WalletAddress, r.Detail, product, transportation, departure, sender, destination, receiver,
	)
}

type AssignDeliveryPersonRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,max=255"`
}
