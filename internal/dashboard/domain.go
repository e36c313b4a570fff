// Package dashboard implements the landing view: aggregate metrics, the
// trailing-week sales series, the category breakdown and top products.
package dashboard

import "github.com/shopspring/decimal"

// Summary is the backend's aggregate metrics card.
type Summary struct {
	TotalProducts  int64           `json:"totalProducts"`
	TotalSales     int64           `json:"totalSales"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalDebt      decimal.Decimal `json:"totalDebt"`
	LowStockCount  int64           `json:"lowStockCount"`
}

// DayPoint is one calendar day of the sales time series. Date is a
// YYYY-MM-DD key.
type DayPoint struct {
	Date    string          `json:"date"`
	Sales   int64           `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// PieSlice is one slice of the category breakdown.
type PieSlice struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// TopProduct is one row of the best-sellers list.
type TopProduct struct {
	Name    string          `json:"name"`
	SoldQty int64           `json:"soldQty"`
	Revenue decimal.Decimal `json:"revenue"`
}
