package order

import (
	"errors"
	"fmt"

	"delivery-order/internal/pkg/errs"
	"delivery-order/internal/pkg/guard"
)

var ErrTransportationIsNotConstructed = errors.New(
	"Transportation must be created via NewTransportation constructor")

// Mode is a way of carrying the parcel.
type Mode string

const (
	Walking Mode = "walking"
	Bicycle Mode = "bicycle"
	Scooter Mode = "scooter"
	Bike    Mode = "bike"
	Car     Mode = "car"
	Truck   Mode = "truck"
)

// AllModes lists the modes in their column order.
func AllModes() []Mode {
	return []Mode{Walking, Bicycle, Scooter, Bike, Car, Truck}
}

// Transportation records, per mode, whether the requester accepts it.
// Stored as 0/1 flags, one column per mode.
type Transportation struct {
	flags map[Mode]bool
	guard guard.ConstructorGuard
}

// NewTransportation takes a partial mode->flag map. Missing modes default to 0;
// flags other than 0 and 1 and unknown modes are rejected.
//
// Example:
//
//	t, err := order.NewTransportation(map[order.Mode]int{order.Car: 1, order.Truck: 1})
func NewTransportation(flags map[Mode]int) (Transportation, error) {
	t := Transportation{
		flags: make(map[Mode]bool, len(AllModes())),
		guard: guard.NewConstructorGuard(),
	}

	known := make(map[Mode]struct{}, len(AllModes()))
	for _, m := range AllModes() {
		known[m] = struct{}{}
		t.flags[m] = false
	}

	var errList []error
	for mode, flag := range flags {
		if _, ok := known[mode]; !ok {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"transportation", fmt.Errorf("%q is not a transport mode", string(mode))))
			continue
		}
		if flag != 0 && flag != 1 {
			errList = append(errList, errs.NewValueIsOutOfRangeError(string(mode), flag, 0, 1))
			continue
		}
		t.flags[mode] = flag == 1
	}

	if err := errors.Join(errList...); err != nil {
		return Transportation{}, err
	}

	return t, nil
}

func (t Transportation) Validate() error {
	return t.guard.Validate(ErrTransportationIsNotConstructed)
}

// Accepts reports whether the mode is allowed.
func (t Transportation) Accepts(mode Mode) bool {
	return t.flags[mode]
}

// Flag returns the stored 0/1 value for mode.
func (t Transportation) Flag(mode Mode) int {
	if t.flags[mode] {
		return 1
	}
	return 0
}
