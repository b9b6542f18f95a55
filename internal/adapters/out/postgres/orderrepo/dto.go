// Package orderrepo persists orders and their sub-records with GORM.
//
// An order is stored across several tables that share its primary key:
// products, transportations, departures and destinations reference orders.id
// with their own id, and senders/receivers reference their departure or
// destination the same way. The foreign keys are created by the migration in
// the parent postgres package, so the row structs below carry no associations.
package orderrepo

import (
	"time"

	"delivery-order/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID                          int64     `gorm:"primaryKey;autoIncrement"`
	Detail                      *string   `gorm:"type:text"`
	RequesterID                 uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryPersonWalletAddress *string   `gorm:"type:varchar(255);index"`
	Status                      string    `gorm:"type:varchar(20);not null;default:created;index"`
	CreatedAt                   time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO is a row of the products table, keyed by the order id.
type ProductDTO struct {
	ID     int64   `gorm:"primaryKey;autoIncrement:false"`
	Width  float64 `gorm:"type:double precision;not null"`
	Length float64 `gorm:"type:double precision;not null"`
	Height float64 `gorm:"type:double precision;not null"`
	Weight float64 `gorm:"type:double precision;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// TransportationDTO is a row of the transportations table, keyed by the
// order id. It keeps one 0/1 column per transport mode.
type TransportationDTO struct {
	ID      int64 `gorm:"primaryKey;autoIncrement:false"`
	Walking int16 `gorm:"type:smallint;not null;default:0"`
	Bicycle int16 `gorm:"type:smallint;not null;default:0"`
	Scooter int16 `gorm:"type:smallint;not null;default:0"`
	Bike    int16 `gorm:"type:smallint;not null;default:0"`
	Car     int16 `gorm:"type:smallint;not null;default:0"`
	Truck   int16 `gorm:"type:smallint;not null;default:0"`
}

func (TransportationDTO) TableName() string {
	return "transportations"
}

// DestinationDTO is a row of the destinations table, keyed by the order id.
// Its receiver row references it.
type DestinationDTO struct {
	ID     int64   `gorm:"primaryKey;autoIncrement:false"`
	X      float64 `gorm:"type:double precision;not null"`
	Y      float64 `gorm:"type:double precision;not null"`
	Detail string  `gorm:"type:text"`
}

func (DestinationDTO) TableName() string {
	return "destinations"
}

// ReceiverDTO is a row of the receivers table, keyed by the destination id.
type ReceiverDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement:false"`
	Name  string `gorm:"type:varchar(100);not null"`
	Phone string `gorm:"type:varchar(20);not null"`
}

func (ReceiverDTO) TableName() string {
	return "receivers"
}

// DepartureDTO is a row of the departures table, keyed by the order id.
// Its sender row references it.
type DepartureDTO struct {
	ID     int64   `gorm:"primaryKey;autoIncrement:false"`
	X      float64 `gorm:"type:double precision;not null"`
	Y      float64 `gorm:"type:double precision;not null"`
	Detail string  `gorm:"type:text"`
}

func (DepartureDTO) TableName() string {
	return "departures"
}

// SenderDTO is a row of the senders table, keyed by the departure id.
type SenderDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement:false"`
	Name  string `gorm:"type:varchar(100);not null"`
	Phone string `gorm:"type:varchar(20);not null"`
}

func (SenderDTO) TableName() string {
	return "senders"
}

// Models lists every table owned by this package, parents first.
func Models() []any {
	return []any{
		&OrderDTO{},
		&ProductDTO{},
		&TransportationDTO{},
		&DestinationDTO{},
		&ReceiverDTO{},
		&DepartureDTO{},
		&SenderDTO{},
	}
}

// orderRows is the set of rows written for one order.
type orderRows struct {
	order          OrderDTO
	product        ProductDTO
	transportation TransportationDTO
	destination    DestinationDTO
	receiver       ReceiverDTO
	departure      DepartureDTO
	sender         SenderDTO
}

// fromDomain maps an order to its rows. Ids are left zero until the order
// row is inserted.
func fromDomain(aggregate *order.Order) orderRows {
	var detail *string
	if d := aggregate.Detail(); d != "" {
		detail = &d
	}

	product := aggregate.Product()
	transportation := aggregate.Transportation()
	departure := aggregate.Departure()
	destination := aggregate.Destination()

	return orderRows{
		order: OrderDTO{
			Detail:      detail,
			RequesterID: aggregate.RequesterID().Bytes(),
			Status:      aggregate.Status().String(),
		},
		product: ProductDTO{
			Width:  product.Width(),
			Length: product.Length(),
			Height: product.Height(),
			Weight: product.Weight(),
		},
		transportation: TransportationDTO{
			Walking: int16(transportation.Flag(order.Walking)),
			Bicycle: int16(transportation.Flag(order.Bicycle)),
			Scooter: int16(transportation.Flag(order.Scooter)),
			Bike:    int16(transportation.Flag(order.Bike)),
			Car:     int16(transportation.Flag(order.Car)),
			Truck:   int16(transportation.Flag(order.Truck)),
		},
		destination: DestinationDTO{
			X:      float64(destination.X()),
			Y:      float64(destination.Y()),
			Detail: destination.Detail(),
		},
		receiver: ReceiverDTO{
			Name:  aggregate.Receiver().Name(),
			Phone: aggregate.Receiver().Phone(),
		},
		departure: DepartureDTO{
			X:      float64(departure.X()),
			Y:      float64(departure.Y()),
			Detail: departure.Detail(),
		},
		sender: SenderDTO{
			Name:  aggregate.Sender().Name(),
			Phone: aggregate.Sender().Phone(),
		},
	}
}

// withOrderID stamps the id generated for the order row onto every sub-row.
func (r *orderRows) withOrderID(id int64) {
	r.product.ID = id
	r.transportation.ID = id
	r.destination.ID = id
	r.receiver.ID = id
	r.departure.ID = id
	r.sender.ID = id
}

// children returns the sub-rows in foreign key order.
func (r *orderRows) children() []any {
	return []any{
		&r.product,
		&r.transportation,
		&r.destination,
		&r.receiver,
		&r.departure,
		&r.sender,
	}
}
