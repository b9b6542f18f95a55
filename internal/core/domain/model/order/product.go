package order

import (
	"errors"

	"delivery-order/internal/pkg/errs"
	"delivery-order/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product holds the parcel size. Zero is accepted for every dimension because
// the requester may not know it; negative values are rejected.
type Product struct {
	width  float64
	length float64
	height float64
	weight float64
	guard  guard.ConstructorGuard
}

func NewProduct(width, length, height, weight float64) (Product, error) {
	if err := errors.Join(
		nonNegative("width", width),
		nonNegative("length", length),
		nonNegative("height", height),
		nonNegative("weight", weight),
	); err != nil {
		return Product{}, err
	}

	return Product{
		width:  width,
		length: length,
		height: height,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) Width() float64  { return p.width }
func (p Product) Length() float64 { return p.length }
func (p Product) Height() float64 { return p.height }
func (p Product) Weight() float64 { return p.weight }

func nonNegative(param string, v float64) error {
	if v < 0 {
		return errs.NewValueIsOutOfRangeError(param, v, 0, "unbounded")
	}
	return nil
}
