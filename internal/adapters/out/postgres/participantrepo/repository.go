// Package participantrepo reads the sender and receiver side of stored orders.
package participantrepo

import (
	"context"
	"database/sql"

	"delivery-order/internal/adapters/out/postgres/orderrepo"
	"delivery-order/internal/core/dto"
	"delivery-order/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderParticipantRepository implements ports.OrderParticipantRepository.
// It only reads; the rows are written by orderrepo.GormOrderRepository.
type GormOrderParticipantRepository struct {
	db *gorm.DB
}

// NewGormOrderParticipantRepository creates a repository reading through db.
// Pass a transaction handle to read inside a unit of work.
func NewGormOrderParticipantRepository(db *gorm.DB) *GormOrderParticipantRepository {
	return &GormOrderParticipantRepository{db: db}
}

// FindSenderReceiverLocationAndPhoneNumberByOrderID joins departure with
// sender and destination with receiver for one order.
//
// Returns *errs.ObjectNotFoundError with ParamName "orderId" when the order does
// not exist, and orderrepo.ErrOrderRecordIncomplete when it exists without one
// of the joined rows.
func (r *GormOrderParticipantRepository) FindSenderReceiverLocationAndPhoneNumberByOrderID(
	ctx context.Context,
	orderID int64,
) (dto.OrderSenderReceiver, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			dp.id,
			COALESCE(dp.x, 0),
			COALESCE(dp.y, 0),
			sd.id,
			COALESCE(sd.phone, ''),
			de.id,
			COALESCE(de.x, 0),
			COALESCE(de.y, 0),
			rc.id,
			COALESCE(rc.phone, '')
		FROM orders o
		LEFT JOIN departures dp ON dp.id = o.id
		LEFT JOIN senders sd ON sd.id = dp.id
		LEFT JOIN destinations de ON de.id = o.id
		LEFT JOIN receivers rc ON rc.id = de.id
		WHERE o.id = ?
	`, orderID).Rows()
	if err != nil {
		return dto.OrderSenderReceiver{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return dto.OrderSenderReceiver{}, err
		}
		return dto.OrderSenderReceiver{}, errs.NewObjectNotFoundError("orderId", orderID)
	}

	var (
		result                    dto.OrderSenderReceiver
		departureID, senderID     sql.NullInt64
		destinationID, receiverID sql.NullInt64
	)
	err = rows.Scan(
		&result.ID,
		&departureID,
		&result.Departure.X,
		&result.Departure.Y,
		&senderID,
		&result.Departure.Sender.Phone,
		&destinationID,
		&result.Destination.X,
		&result.Destination.Y,
		&receiverID,
		&result.Destination.Receiver.Phone,
	)
	if err != nil {
		return dto.OrderSenderReceiver{}, err
	}

	switch {
	case !departureID.Valid:
		return dto.OrderSenderReceiver{}, orderrepo.IncompleteError(orderID, "departures")
	case !senderID.Valid:
		return dto.OrderSenderReceiver{}, orderrepo.IncompleteError(orderID, "senders")
	case !destinationID.Valid:
		return dto.OrderSenderReceiver{}, orderrepo.IncompleteError(orderID, "destinations")
	case !receiverID.Valid:
		return dto.OrderSenderReceiver{}, orderrepo.IncompleteError(orderID, "receivers")
	}

	return result, nil
}
