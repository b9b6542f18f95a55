package order

import (
	"errors"
	"fmt"

	"delivery-order/internal/core/domain/model/kernel"
	"delivery-order/internal/pkg/errs"
	"delivery-order/internal/pkg/guard"
)

var ErrDeliveryPersonIsNotConstructed = errors.New(
	"DeliveryPerson must be created via NewDeliveryPerson constructor")

// DeliveryPerson assigns the wallet of the person carrying the parcel to an order.
type DeliveryPerson struct {
	orderID       int64
	walletAddress kernel.WalletAddress
	guard         guard.ConstructorGuard
}

func NewDeliveryPerson(orderID int64, walletAddress string) (DeliveryPerson, error) {
	var errList []error
	if orderID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", orderID)))
	}

	wallet, err := kernel.NewWalletAddress(walletAddress)
	if err != nil {
		errList = append(errList, err)
	}

	if err = errors.Join(errList...); err != nil {
		return DeliveryPerson{}, err
	}

	return DeliveryPerson{
		orderID:       orderID,
		walletAddress: wallet,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (d DeliveryPerson) Validate() error {
	return d.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

func (d DeliveryPerson) OrderID() int64 {
	return d.orderID
}

func (d DeliveryPerson) WalletAddress() kernel.WalletAddress {
	return d.walletAddress
}
