package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdesk/shopdesk/internal/catalog"
)

func product(cost, sell int64) *catalog.Product {
	return &catalog.Product{
		ID:           1,
		Name:         "Sugar 1kg",
		Quantity:     50,
		CostPrice:    decimal.NewFromInt(cost),
		SellingPrice: decimal.NewFromInt(sell),
	}
}

func TestComputeSaleDetails(t *testing.T) {
	details, ok := ComputeSaleDetails(product(600, 1000), 3)
	require.True(t, ok)

	assert.True(t, details.Revenue.Equal(decimal.NewFromInt(3000)), "revenue %s", details.Revenue)
	assert.True(t, details.Cost.Equal(decimal.NewFromInt(1800)), "cost %s", details.Cost)
	assert.True(t, details.Profit.Equal(decimal.NewFromInt(1200)), "profit %s", details.Profit)
	assert.Equal(t, "40.0", details.Margin)
}

func TestComputeSaleDetailsProfitIdentity(t *testing.T) {
	cases := []struct {
		name     string
		cost     int64
		sell     int64
		quantity int64
	}{
		{"thin margin", 990, 1000, 7},
		{"sold at cost", 500, 500, 2},
		{"sold below cost", 800, 700, 4},
		{"single unit", 600, 1000, 1},
		{"bulk", 25, 40, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			details, ok := ComputeSaleDetails(product(tc.cost, tc.sell), tc.quantity)
			require.True(t, ok)
			assert.True(t, details.Profit.Equal(details.Revenue.Sub(details.Cost)))

			expectedMargin := decimal.Zero
			if details.Revenue.Sign() > 0 {
				expectedMargin = details.Profit.Div(details.Revenue).Mul(decimal.NewFromInt(100))
			}
			assert.Equal(t, expectedMargin.StringFixed(1), details.Margin)
		})
	}
}

func TestComputeSaleDetailsUndefined(t *testing.T) {
	_, ok := ComputeSaleDetails(nil, 3)
	assert.False(t, ok, "no product selected")

	_, ok = ComputeSaleDetails(product(600, 1000), 0)
	assert.False(t, ok, "zero quantity")

	_, ok = ComputeSaleDetails(product(600, 1000), -2)
	assert.False(t, ok, "negative quantity")
}

func TestComputeSaleDetailsZeroPrice(t *testing.T) {
	details, ok := ComputeSaleDetails(product(0, 0), 5)
	require.True(t, ok)
	assert.Equal(t, "0.0", details.Margin, "zero revenue yields zero margin, not NaN")
}
