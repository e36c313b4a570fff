package sales

import (
	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/catalog"
)

var hundred = decimal.NewFromInt(100)

// SaleDetails is the preview computed from the selected product and
// quantity. Margin is profit as a percentage of revenue, rendered to one
// decimal place.
type SaleDetails struct {
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal
	Margin  string
}

// ComputeSaleDetails derives the sale preview. ok is false when no product
// is selected or the quantity is not positive; nothing is rendered then.
func ComputeSaleDetails(product *catalog.Product, quantity int64) (SaleDetails, bool) {
	if product == nil || quantity <= 0 {
		return SaleDetails{}, false
	}
	qty := decimal.NewFromInt(quantity)
	revenue := product.SellingPrice.Mul(qty)
	cost := product.CostPrice.Mul(qty)
	profit := revenue.Sub(cost)

	margin := decimal.Zero
	if revenue.Sign() > 0 {
		margin = profit.Div(revenue).Mul(hundred)
	}
	return SaleDetails{
		Revenue: revenue,
		Cost:    cost,
		Profit:  profit,
		Margin:  margin.StringFixed(1),
	}, true
}
