package api_test

import (
	"testing"

	"delivery-order/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "Delivery Order API", doc.Info.Title)

	operations := map[string]string{
		"/api/v1/users":                       "POST",
		"/api/v1/orders":                      "GET",
		"/api/v1/orders/matchable":            "GET",
		"/api/v1/orders/{id}/delivery-person": "PUT",
		"/api/v1/orders/{id}/sender-receiver": "GET",
	}
	for path, method := range operations {
		item := doc.Paths.Find(path)
		require.NotNil(t, item, path)
		assert.NotNil(t, item.GetOperation(method), "%s %s", method, path)
	}
}
