package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/pkg/errs"
)

// maxDetailLength is counted in characters, not bytes.
const maxDetailLength = 1000

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a delivery request ready to be persisted. It owns exactly one
// product, one transportation, one departure (with its sender) and one
// destination (with its receiver); the repository writes all of them in a
// single transaction under the id the database assigns to the order.
type Order struct {
	requesterID    kernel.UUID
	detail         string
	product        Product
	transportation Transportation
	departure      kernel.Location
	sender         kernel.Participant
	destination    kernel.Location
	receiver       kernel.Participant
	status         Status

	isConstructed bool
}

// NewOrder validates every part and returns an order in the Created status.
// All validation failures are returned together.
//
// Example:
//
//	product, _ := order.NewProduct(30, 20, 10, 2.5)
//	transport, _ := order.NewTransportation(map[order.Mode]int{order.Bike: 1})
//	departure, _ := kernel.NewLocation(37.55, 126.97, "Seoul station exit 1")
//	sender, _ := kernel.NewParticipant("Kim", "01012345678")
//	destination, _ := kernel.NewLocation(37.5, 127.03, "lobby")
//	receiver, _ := kernel.NewParticipant("Lee", "01087654321")
//	o, err := order.NewOrder(user.ID(), "fragile", product, transport, departure, sender, destination, receiver)
func NewOrder(
	requesterID kernel.UUID,
	detail string,
	product Product,
	transportation Transportation,
	departure kernel.Location,
	sender kernel.Participant,
	destination kernel.Location,
	receiver kernel.Participant,
) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setRequesterID(requesterID),
		o.setDetail(detail),
		o.setProduct(product),
		o.setTransportation(transportation),
		o.setDeparture(departure, sender),
		o.setDestination(destination, receiver),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) RequesterID() kernel.UUID {
	return o.requesterID
}

// Detail returns the free-text note; empty means none was given.
func (o *Order) Detail() string {
	return o.detail
}

func (o *Order) Product() Product {
	return o.product
}

func (o *Order) Transportation() Transportation {
	return o.transportation
}

func (o *Order) Departure() kernel.Location {
	return o.departure
}

func (o *Order) Sender() kernel.Participant {
	return o.sender
}

func (o *Order) Destination() kernel.Location {
	return o.destination
}

func (o *Order) Receiver() kernel.Participant {
	return o.receiver
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.requesterID = id
	return nil
}

func (o *Order) setDetail(detail string) error {
	detail = strings.TrimSpace(detail)
	if n := utf8.RuneCountInString(detail); n > maxDetailLength {
		return errs.NewValueIsInvalidErrorWithCause("detail",
			fmt.Errorf("length %d exceeds %d", n, maxDetailLength))
	}
	o.detail = detail
	return nil
}

func (o *Order) setProduct(p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.product = p
	return nil
}

func (o *Order) setTransportation(t Transportation) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.transportation = t
	return nil
}

func (o *Order) setDeparture(loc kernel.Location, sender kernel.Participant) error {
	if err := errors.Join(loc.Validate(), sender.Validate()); err != nil {
		return err
	}
	o.departure = loc
	o.sender = sender
	return nil
}

func (o *Order) setDestination(loc kernel.Location, receiver kernel.Participant) error {
	if err := errors.Join(loc.Validate(), receiver.Validate()); err != nil {
		return err
	}
	o.destination = loc
	o.receiver = receiver
	return nil
}
