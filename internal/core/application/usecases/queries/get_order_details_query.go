package queries

import (
	"errors"
	"fmt"

	"delivery-order/internal/pkg/errs"
	"delivery-order/internal/pkg/guard"
)

// maxOrderIDsPerQuery bounds the IN list sent to the database.
const maxOrderIDsPerQuery = 100

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery asks for the details of several orders at once.
//
// Example:
//
//	query, err := NewGetOrderDetailsQuery([]int64{1, 2, 3})
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
type GetOrderDetailsQuery struct {
	orderIDs []int64
	guard    guard.ConstructorGuard
}

// NewGetOrderDetailsQuery accepts an empty list. Ids must be positive and
// duplicates are dropped before the per-query limit is applied.
func NewGetOrderDetailsQuery(orderIDs []int64) (GetOrderDetailsQuery, error) {
	seen := make(map[int64]struct{}, len(orderIDs))
	unique := make([]int64, 0, len(orderIDs))
	for _, id := range orderIDs {
		if id <= 0 {
			return GetOrderDetailsQuery{}, errs.NewValueIsInvalidErrorWithCause("orderIds",
				fmt.Errorf("%d is not greater than 0", id))
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if len(unique) > maxOrderIDsPerQuery {
		return GetOrderDetailsQuery{}, errs.NewValueIsOutOfRangeError("orderIds", len(unique), 0, maxOrderIDsPerQuery)
	}

	return GetOrderDetailsQuery{orderIDs: unique, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderIDs() []int64 {
	return q.orderIDs
}
