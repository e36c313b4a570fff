package replenish

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ExpiryStatus is the display state derived from a batch's expiry date.
type ExpiryStatus struct {
	Expired         bool
	DaysUntilExpiry int
	Label           string
}

// BatchExpiry derives the expiry status at the given instant. A nil expiry
// date reads "No expiry" and never counts as expired. Days until expiry
// round up, so a batch expiring later today shows one day left.
func BatchExpiry(expiry *time.Time, now time.Time) ExpiryStatus {
	if expiry == nil {
		return ExpiryStatus{Label: "No expiry"}
	}
	days := int(math.Ceil(expiry.Sub(now).Hours() / 24))
	if expiry.Before(now) {
		return ExpiryStatus{Expired: true, DaysUntilExpiry: days, Label: "Expired"}
	}
	return ExpiryStatus{
		DaysUntilExpiry: days,
		Label:           fmt.Sprintf("Expires in %d days", days),
	}
}

// BatchMargin is the markup of selling price over cost, as a percentage of
// cost. ok is false when the cost price is not positive; the margin is
// undefined then and renders as "N/A" rather than a non-finite value.
func BatchMargin(costPrice, sellingPrice decimal.Decimal) (decimal.Decimal, bool) {
	if costPrice.Sign() <= 0 {
		return decimal.Zero, false
	}
	return sellingPrice.Sub(costPrice).Div(costPrice).Mul(hundred), true
}
