package reports

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Summary holds the element-wise sums across all report lines.
type Summary struct {
	TotalSold            int64
	TotalRemaining       int64
	TotalRevenue         decimal.Decimal
	TotalCost            decimal.Decimal
	TotalActualProfit    decimal.Decimal
	TotalExpectedProfit  decimal.Decimal
	TotalPotentialProfit decimal.Decimal
	ProfitMarginPercent  decimal.Decimal
}

// Totals sums the report lines. The margin percentage is actual profit over
// revenue; it is zero when there is no revenue.
func Totals(lines []Line) Summary {
	s := Summary{
		TotalRevenue:         decimal.Zero,
		TotalCost:            decimal.Zero,
		TotalActualProfit:    decimal.Zero,
		TotalExpectedProfit:  decimal.Zero,
		TotalPotentialProfit: decimal.Zero,
		ProfitMarginPercent:  decimal.Zero,
	}
	for _, line := range lines {
		s.TotalSold += line.SoldQty
		s.TotalRemaining += line.RemainingQty
		s.TotalRevenue = s.TotalRevenue.Add(line.Revenue)
		s.TotalCost = s.TotalCost.Add(line.Cost)
		s.TotalActualProfit = s.TotalActualProfit.Add(line.ActualProfit)
		s.TotalExpectedProfit = s.TotalExpectedProfit.Add(line.ExpectedProfit)
		s.TotalPotentialProfit = s.TotalPotentialProfit.Add(line.TotalPotentialProfit)
	}
	if s.TotalRevenue.Sign() > 0 {
		s.ProfitMarginPercent = s.TotalActualProfit.Div(s.TotalRevenue).Mul(hundred)
	}
	return s
}
