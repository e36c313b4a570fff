package replenish

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/shared"
)

// BatchForm captures the replenishment inputs. The expiry date is optional
// and unrestricted. Fields are declared in rule precedence order.
type BatchForm struct {
	ProductID    int64           `validate:"required,gt=0"`
	Quantity     int64           `validate:"required,gt=0"`
	CostPrice    decimal.Decimal `validate:"-"`
	SellingPrice decimal.Decimal `validate:"-"`
	ExpiryDate   *time.Time      `validate:"-"`
}

var batchReasons = map[string]string{
	"ProductID": "select a product",
	"Quantity":  "quantity must be greater than zero",
}

// Validate gates submission; nil means the form is accepted.
func (f BatchForm) Validate() error {
	if err := shared.FirstReason(shared.FormValidator.Struct(f), batchReasons); err != nil {
		return err
	}
	if f.CostPrice.Sign() <= 0 {
		return shared.NewValidationError("cost price must be greater than zero")
	}
	if f.SellingPrice.Sign() <= 0 {
		return shared.NewValidationError("selling price must be greater than zero")
	}
	return nil
}
