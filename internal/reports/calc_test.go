package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	lines := []Line{
		{
			Product: "Sugar 1kg", SoldQty: 10, RemainingQty: 40,
			Revenue: decimal.NewFromInt(100), Cost: decimal.NewFromInt(40),
			ActualProfit: decimal.NewFromInt(60), ExpectedProfit: decimal.NewFromInt(80),
			TotalPotentialProfit: decimal.NewFromInt(300),
		},
		{
			Product: "Rice 5kg", SoldQty: 2, RemainingQty: 8,
			Revenue: decimal.NewFromInt(50), Cost: decimal.NewFromInt(10),
			ActualProfit: decimal.NewFromInt(40), ExpectedProfit: decimal.NewFromInt(45),
			TotalPotentialProfit: decimal.NewFromInt(200),
		},
	}

	s := Totals(lines)
	assert.Equal(t, int64(12), s.TotalSold)
	assert.Equal(t, int64(48), s.TotalRemaining)
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(150)), "revenue %s", s.TotalRevenue)
	assert.True(t, s.TotalCost.Equal(decimal.NewFromInt(50)), "cost %s", s.TotalCost)
	assert.True(t, s.TotalActualProfit.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.TotalExpectedProfit.Equal(decimal.NewFromInt(125)))
	assert.True(t, s.TotalPotentialProfit.Equal(decimal.NewFromInt(500)))

	// 100 / 150 * 100
	assert.Equal(t, "66.7", s.ProfitMarginPercent.StringFixed(1))
}

func TestTotalsEmpty(t *testing.T) {
	s := Totals(nil)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.ProfitMarginPercent.IsZero(), "no revenue yields zero margin, not NaN")
}
