package kernel

import (
	"fmt"
	"strings"

	"delivery-order/internal/pkg/errs"
)

const maxWalletAddressLength = 255

// WalletAddress identifies a user (requester or delivery person) on the chain
// side. Only presence and length are checked; the format belongs to the wallet.
type WalletAddress string

func NewWalletAddress(s string) (WalletAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError("walletAddress")
	}
	if len(s) > maxWalletAddressLength {
		return "", errs.NewValueIsInvalidErrorWithCause("walletAddress",
			fmt.Errorf("length %d exceeds %d", len(s), maxWalletAddressLength))
	}
	return WalletAddress(s), nil
}

func (w WalletAddress) String() string {
	return string(w)
}
