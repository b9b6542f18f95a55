package kernel

import (
	"errors"
	"fmt"

	"delivery-order/internal/pkg/errs"
	"delivery-order/internal/pkg/guard"
)

// Coordinate is one axis of a geographic point in decimal degrees.
type Coordinate float64

const (
	// LocationMinX and LocationMaxX bound the latitude axis.
	LocationMinX Coordinate = -90
	LocationMaxX Coordinate = 90
	// LocationMinY and LocationMaxY bound the longitude axis.
	LocationMinY Coordinate = -180
	LocationMaxY Coordinate = 180
)

// ErrLocationIsNotConstructed is returned when a zero value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation constructor")

// Location is an immutable point with an optional free-text detail
// (building, floor, gate code) attached to it.
//
// Example:
//
//	loc, err := kernel.NewLocation(37.5, 127.03, "2nd floor")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // Location(37.5,127.03)
type Location struct { //nolint:recvcheck // setters use pointer receivers during construction
	x      Coordinate
	y      Coordinate
	detail string
	guard  guard.ConstructorGuard
}

// NewLocation validates both coordinates and returns a Location.
// Out of range coordinates are reported together via errors.Join.
func NewLocation(x, y Coordinate, detail string) (Location, error) {
	loc := Location{
		detail: detail,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate fails for a Location that did not come from NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) X() Coordinate {
	return l.x
}

func (l Location) Y() Coordinate {
	return l.y
}

func (l Location) Detail() string {
	return l.detail
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.x, l.y)
}

// IsEqual compares coordinates and detail. Both locations must be constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}
