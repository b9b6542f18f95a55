package queries

import (
	"errors"
	"fmt"

	"delivery-order/internal/pkg/errs"
	"delivery-order/internal/pkg/guard"
)

var ErrGetOrderSenderReceiverQueryIsNotConstructed = errors.New(
	"GetOrderSenderReceiverQuery must be created via NewGetOrderSenderReceiverQuery constructor",
)

// GetOrderSenderReceiverQuery asks for the pickup and drop-off contacts of one order.
type GetOrderSenderReceiverQuery struct {
	orderID int64
	guard   guard.ConstructorGuard
}

func NewGetOrderSenderReceiverQuery(orderID int64) (GetOrderSenderReceiverQuery, error) {
	if orderID <= 0 {
		return GetOrderSenderReceiverQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	return GetOrderSenderReceiverQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderSenderReceiverQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSenderReceiverQueryIsNotConstructed)
}

func (q GetOrderSenderReceiverQuery) OrderID() int64 {
	return q.orderID
}
