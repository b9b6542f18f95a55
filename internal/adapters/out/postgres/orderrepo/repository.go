package orderrepo

import (
	"context"
	"database/sql"

	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/core/dto"
	"delivery-order/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db     *gorm.DB
	policy StatusPolicy
}

// NewGormOrderRepository creates a new GORM order repository. Empty status
// sets in policy fall back to DefaultStatusPolicy.
func NewGormOrderRepository(db *gorm.DB, policy StatusPolicy) *GormOrderRepository {
	return &GormOrderRepository{
		db:     db,
		policy: policy.withDefaults(),
	}
}

// CreateOrder inserts the order row, takes the generated id and inserts the
// product, transportation, destination, receiver, departure and sender rows
// under it. Inside a unit of work the nested Transaction becomes a savepoint,
// so a failure still leaves the outer transaction usable.
func (r *GormOrderRepository) CreateOrder(ctx context.Context, aggregate *order.Order) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	rows := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows.order).Error; err != nil {
			return err
		}

		rows.withOrderID(rows.order.ID)
		for _, child := range rows.children() {
			if err := tx.Create(child).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return rows.order.ID, nil
}

// FindAllCreatedOrDeliveredOrderDetailByOrderIDs returns orders among orderIDs
// whose status is in the policy's detail set, ordered by id.
func (r *GormOrderRepository) FindAllCreatedOrDeliveredOrderDetailByOrderIDs(
	ctx context.Context,
	orderIDs []int64,
) ([]dto.OrderDetail, error) {
	details := make([]dto.OrderDetail, 0, len(orderIDs))
	if len(orderIDs) == 0 {
		return details, nil
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.detail,
			o.delivery_person_wallet_address,`+productColumns+`,`+transportationColumns+`,
			de.id,
			COALESCE(de.x, 0),
			COALESCE(de.y, 0),
			COALESCE(de.detail, ''),
			rc.id,
			COALESCE(rc.name, ''),
			COALESCE(rc.phone, ''),
			dp.id,
			COALESCE(dp.x, 0),
			COALESCE(dp.y, 0),
			COALESCE(dp.detail, ''),
			sd.id,
			COALESCE(sd.name, ''),
			COALESCE(sd.phone, '')
		FROM orders o
		LEFT JOIN products p ON p.id = o.id
		LEFT JOIN transportations t ON t.id = o.id
		LEFT JOIN destinations de ON de.id = o.id
		LEFT JOIN receivers rc ON rc.id = de.id
		LEFT JOIN departures dp ON dp.id = o.id
		LEFT JOIN senders sd ON sd.id = dp.id
		WHERE o.id IN ? AND o.status IN ?
		ORDER BY o.id
	`, orderIDs, statusStrings(r.policy.DetailStatuses)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row orderDetailRow
		if err = row.scan(rows); err != nil {
			return nil, err
		}

		detail, convErr := row.toDTO()
		if convErr != nil {
			return nil, convErr
		}
		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

// FindAllMatchableOrderByWalletAddress returns orders in a matchable status
// that nobody delivers yet and that walletAddress did not request, ordered by id.
func (r *GormOrderRepository) FindAllMatchableOrderByWalletAddress(
	ctx context.Context,
	walletAddress string,
) ([]dto.MatchableOrder, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.detail,`+productColumns+`,`+transportationColumns+`,
			de.id,
			COALESCE(de.x, 0),
			COALESCE(de.y, 0),
			dp.id,
			COALESCE(dp.x, 0),
			COALESCE(dp.y, 0)
		FROM orders o
		JOIN users u ON u.id = o.requester_id
		LEFT JOIN products p ON p.id = o.id
		LEFT JOIN transportations t ON t.id = o.id
		LEFT JOIN destinations de ON de.id = o.id
		LEFT JOIN departures dp ON dp.id = o.id
		WHERE o.status IN ?
			AND o.delivery_person_wallet_address IS NULL
			AND u.wallet_address <> ?
		ORDER BY o.id
	`, statusStrings(r.policy.MatchableStatuses), walletAddress).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]dto.MatchableOrder, 0)
	for rows.Next() {
		var row matchableOrderRow
		if err = row.scan(rows); err != nil {
			return nil, err
		}

		matchable, convErr := row.toDTO()
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, matchable)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateDeliveryPersonAtOrder sets the delivery person wallet of the order.
// The status is left as is.
func (r *GormOrderRepository) UpdateDeliveryPersonAtOrder(
	ctx context.Context,
	deliveryPerson order.DeliveryPerson,
) error {
	if err := deliveryPerson.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", deliveryPerson.OrderID()).
		Update("delivery_person_wallet_address", deliveryPerson.WalletAddress().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", deliveryPerson.OrderID())
	}

	return nil
}

// CountByStatus groups the orders table by status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status, COUNT(*)").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int64)
	for rows.Next() {
		var (
			status string
			total  sql.NullInt64
		)
		if err = rows.Scan(&status, &total); err != nil {
			return nil, err
		}
		counts[order.Status(status)] = total.Int64
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
