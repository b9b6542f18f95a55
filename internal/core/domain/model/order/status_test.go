package order_test

import (
	"testing"

	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		require.NoError(t, s.Validate(), s.String())
	}

	require.ErrorIs(t, order.Status("lost").Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status("").Validate(), errs.ErrValueIsInvalid)
}

func TestParseStatuses(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []order.Status
		wantErr error
	}{
		{name: "single", raw: "created", want: []order.Status{order.Created}},
		{name: "list with spaces and case", raw: " Created , DELIVERED ", want: []order.Status{order.Created, order.Delivered}},
		{name: "duplicates collapse", raw: "created,created,matched", want: []order.Status{order.Created, order.Matched}},
		{name: "blank items skipped", raw: "created,,", want: []order.Status{order.Created}},
		{name: "empty", raw: "", wantErr: errs.ErrValueIsRequired},
		{name: "only commas", raw: " , ", wantErr: errs.ErrValueIsRequired},
		{name: "unknown status", raw: "created,lost", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseStatuses(tt.raw)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
