package orderrepo

import (
	"database/sql"
	"errors"
	"fmt"

	"delivery-order/internal/core/dto"
)

// ErrOrderRecordIncomplete reports an order row whose sub-records are missing.
// CreateOrder never leaves such a row behind, so it means the data was altered
// outside this package.
var ErrOrderRecordIncomplete = errors.New("order record is incomplete")

// IncompleteError wraps ErrOrderRecordIncomplete with the order id and the
// first missing table.
func IncompleteError(orderID int64, table string) error {
	return fmt.Errorf("%w: order %d has no %s row", ErrOrderRecordIncomplete, orderID, table)
}

// Sub-table ids are selected without COALESCE so that NULL marks a missing row.
const (
	productColumns = `
			p.id,
			COALESCE(p.width, 0),
			COALESCE(p.length, 0),
			COALESCE(p.height, 0),
			COALESCE(p.weight, 0)`

	transportationColumns = `
			t.id,
			COALESCE(t.walking, 0),
			COALESCE(t.bicycle, 0),
			COALESCE(t.scooter, 0),
			COALESCE(t.bike, 0),
			COALESCE(t.car, 0),
			COALESCE(t.truck, 0)`
)

type productRow struct {
	id                            sql.NullInt64
	width, length, height, weight float64
}

func (r *productRow) dest() []any {
	return []any{&r.id, &r.width, &r.length, &r.height, &r.weight}
}

func (r productRow) toDTO() dto.Product {
	return dto.Product{Width: r.width, Length: r.length, Height: r.height, Weight: r.weight}
}

type transportationRow struct {
	id                                          sql.NullInt64
	walking, bicycle, scooter, bike, car, truck int
}

func (r *transportationRow) dest() []any {
	return []any{&r.id, &r.walking, &r.bicycle, &r.scooter, &r.bike, &r.car, &r.truck}
}

func (r transportationRow) toDTO() dto.Transportation {
	return dto.Transportation{
		"walking": r.walking,
		"bicycle": r.bicycle,
		"scooter": r.scooter,
		"bike":    r.bike,
		"car":     r.car,
		"truck":   r.truck,
	}
}

// placeRow is a departure or destination joined with its sender or receiver.
type placeRow struct {
	id        sql.NullInt64
	x, y      float64
	detail    string
	contactID sql.NullInt64
	name      string
	phone     string
}

func (r *placeRow) dest() []any {
	return []any{&r.id, &r.x, &r.y, &r.detail, &r.contactID, &r.name, &r.phone}
}

type orderDetailRow struct {
	id             int64
	status         string
	detail         sql.NullString
	deliveryPerson sql.NullString
	product        productRow
	transportation transportationRow
	destination    placeRow
	departure      placeRow
}

func (r *orderDetailRow) scan(rows *sql.Rows) error {
	dest := []any{&r.id, &r.status, &r.detail, &r.deliveryPerson}
	dest = append(dest, r.product.dest()...)
	dest = append(dest, r.transportation.dest()...)
	dest = append(dest, r.destination.dest()...)
	dest = append(dest, r.departure.dest()...)
	return rows.Scan(dest...)
}

func (r orderDetailRow) toDTO() (dto.OrderDetail, error) {
	switch {
	case !r.product.id.Valid:
		return dto.OrderDetail{}, IncompleteError(r.id, "products")
	case !r.transportation.id.Valid:
		return dto.OrderDetail{}, IncompleteError(r.id, "transportations")
	case !r.destination.id.Valid:
		return dto.OrderDetail{}, IncompleteError(r.id, "destinations")
	case !r.destination.contactID.Valid:
		return dto.OrderDetail{}, IncompleteError(r.id, "receivers")
	case !r.departure.id.Valid:
		return dto.OrderDetail{}, IncompleteError(r.id, "departures")
	case !r.departure.contactID.Valid:
		return dto.OrderDetail{}, IncompleteError(r.id, "senders")
	}

	return dto.OrderDetail{
		OrderID:        r.id,
		Status:         r.status,
		Detail:         nullableString(r.detail),
		DeliveryPerson: nullableString(r.deliveryPerson),
		Product:        r.product.toDTO(),
		Transportation: r.transportation.toDTO(),
		Departure:      dto.Place{X: r.departure.x, Y: r.departure.y, Detail: r.departure.detail},
		Destination:    dto.Place{X: r.destination.x, Y: r.destination.y, Detail: r.destination.detail},
		Sender:         dto.Contact{Name: r.departure.name, Phone: r.departure.phone},
		Receiver:       dto.Contact{Name: r.destination.name, Phone: r.destination.phone},
	}, nil
}

type matchableOrderRow struct {
	id             int64
	detail         sql.NullString
	product        productRow
	transportation transportationRow
	destinationID  sql.NullInt64
	destinationX   float64
	destinationY   float64
	departureID    sql.NullInt64
	departureX     float64
	departureY     float64
}

func (r *matchableOrderRow) scan(rows *sql.Rows) error {
	dest := []any{&r.id, &r.detail}
	dest = append(dest, r.product.dest()...)
	dest = append(dest, r.transportation.dest()...)
	dest = append(dest,
		&r.destinationID, &r.destinationX, &r.destinationY,
		&r.departureID, &r.departureX, &r.departureY,
	)
	return rows.Scan(dest...)
}

func (r matchableOrderRow) toDTO() (dto.MatchableOrder, error) {
	switch {
	case !r.product.id.Valid:
		return dto.MatchableOrder{}, IncompleteError(r.id, "products")
	case !r.transportation.id.Valid:
		return dto.MatchableOrder{}, IncompleteError(r.id, "transportations")
	case !r.destinationID.Valid:
		return dto.MatchableOrder{}, IncompleteError(r.id, "destinations")
	case !r.departureID.Valid:
		return dto.MatchableOrder{}, IncompleteError(r.id, "departures")
	}

	return dto.MatchableOrder{
		OrderID:        r.id,
		Detail:         nullableString(r.detail),
		Product:        r.product.toDTO(),
		Transportation: r.transportation.toDTO(),
		Departure:      dto.Point{X: r.departureX, Y: r.departureY},
		Destination:    dto.Point{X: r.destinationX, Y: r.destinationY},
	}, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
