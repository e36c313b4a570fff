// Package reports implements the reports page: the per-product report
// table, its client-side aggregate totals, and binary export downloads.
package reports

import "github.com/shopspring/decimal"

// Line is one fully server-computed report row. The client only sums and
// renders; it never recomputes a row.
type Line struct {
	Product              string          `json:"product"`
	SoldQty              int64           `json:"soldQty"`
	RemainingQty         int64           `json:"remainingQty"`
	Revenue              decimal.Decimal `json:"revenue"`
	Cost                 decimal.Decimal `json:"cost"`
	ActualProfit         decimal.Decimal `json:"actualProfit"`
	ExpectedProfit       decimal.Decimal `json:"expectedProfit"`
	TotalPotentialProfit decimal.Decimal `json:"totalPotentialProfit"`
}
