package debtors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestRemainingDebt(t *testing.T) {
	customer := &Customer{ID: 1, Name: "Amina", Balance: decimal.NewFromInt(5000)}

	t.Run("no customer selected", func(t *testing.T) {
		got := RemainingDebt(nil, amount(1000), decimal.NewFromInt(3000))
		assert.True(t, got.IsZero())
	})

	t.Run("no credit amount entered", func(t *testing.T) {
		got := RemainingDebt(customer, nil, decimal.NewFromInt(3000))
		assert.True(t, got.Equal(decimal.NewFromInt(5000)), "balance unchanged, got %s", got)
	})

	t.Run("partial credit", func(t *testing.T) {
		got := RemainingDebt(customer, amount(1000), decimal.NewFromInt(3000))
		assert.True(t, got.Equal(decimal.NewFromInt(3000)), "got %s", got)
	})

	t.Run("never negative", func(t *testing.T) {
		cases := []struct {
			balance int64
			credit  int64
			revenue int64
		}{
			{0, 0, 1000},
			{100, 0, 5000},
			{5000, 1000, 10000},
			{0, 500, 501},
		}
		for _, tc := range cases {
			c := &Customer{Balance: decimal.NewFromInt(tc.balance)}
			got := RemainingDebt(c, amount(tc.credit), decimal.NewFromInt(tc.revenue))
			assert.True(t, got.Sign() >= 0, "balance=%d credit=%d revenue=%d got %s", tc.balance, tc.credit, tc.revenue, got)
		}
	})
}

func TestNewDebt(t *testing.T) {
	got := NewDebt(decimal.NewFromInt(3000), decimal.NewFromInt(1000))
	assert.True(t, got.Equal(decimal.NewFromInt(2000)), "got %s", got)

	got = NewDebt(decimal.NewFromInt(3000), decimal.NewFromInt(3000))
	assert.True(t, got.IsZero(), "fully paid sale leaves no debt")

	got = NewDebt(decimal.NewFromInt(3000), decimal.NewFromInt(4000))
	assert.True(t, got.IsZero(), "overpayment floors at zero")
}
