package order_test

import (
	"testing"

	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should keep dimensions", func(t *testing.T) {
		p, err := order.NewProduct(30, 20, 10, 2.5)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 30, p.Width(), 0)
		assert.InDelta(t, 20, p.Length(), 0)
		assert.InDelta(t, 10, p.Height(), 0)
		assert.InDelta(t, 2.5, p.Weight(), 0)
	})

	t.Run("should accept unknown (zero) size", func(t *testing.T) {
		p, err := order.NewProduct(0, 0, 0, 0)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})

	t.Run("should reject negative values", func(t *testing.T) {
		p, err := order.NewProduct(-1, 20, 10, -0.5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "is width")
		assert.Contains(t, err.Error(), "is weight")
		assert.NotContains(t, err.Error(), "is length")
		require.ErrorIs(t, p.Validate(), order.ErrProductIsNotConstructed)
	})
}
