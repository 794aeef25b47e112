package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOrderInput(t *testing.T) {
	cases := []struct {
		name       string
		customerID int
		items      []OrderItemInput
		wantErr    bool
	}{
		{
			name:       "valid single item",
			customerID: 1,
			items:      []OrderItemInput{{ProductID: 1, Quantity: 1}},
		},
		{
			name:       "valid multiple items",
			customerID: 2,
			items:      []OrderItemInput{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 1}},
		},
		{
			name:       "empty item list",
			customerID: 1,
			items:      nil,
			wantErr:    true,
		},
		{
			name:       "zero quantity",
			customerID: 1,
			items:      []OrderItemInput{{ProductID: 1, Quantity: 0}},
			wantErr:    true,
		},
		{
			name:       "negative quantity",
			customerID: 1,
			items:      []OrderItemInput{{ProductID: 1, Quantity: -2}},
			wantErr:    true,
		},
		{
			name:       "one bad item poisons the order",
			customerID: 1,
			items:      []OrderItemInput{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 0}},
			wantErr:    true,
		},
		{
			name:       "missing customer reference",
			customerID: 0,
			items:      []OrderItemInput{{ProductID: 1, Quantity: 1}},
			wantErr:    true,
		},
		{
			name:       "missing product reference",
			customerID: 1,
			items:      []OrderItemInput{{ProductID: 0, Quantity: 1}},
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateOrderInput(tc.customerID, tc.items)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
