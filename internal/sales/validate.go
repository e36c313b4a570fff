package sales

import (
	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/shared"
)

// SaleForm captures the sale inputs. Customer and credit amount are both
// optional; the credit rule only applies when both are set. Fields are
// declared in rule precedence order.
type SaleForm struct {
	ProductID    int64            `validate:"required,gt=0"`
	Quantity     int64            `validate:"required,gt=0"`
	CustomerID   *int64           `validate:"-"`
	CreditAmount *decimal.Decimal `validate:"-"`
}

var saleReasons = map[string]string{
	"ProductID": "select a product",
	"Quantity":  "quantity must be greater than zero",
}

// Validate gates submission against the selected product. The stock check
// is best effort over the client's snapshot; the backend remains
// authoritative under concurrent sales.
func (f SaleForm) Validate(product *catalog.Product) error {
	if err := shared.FirstReason(shared.FormValidator.Struct(f), saleReasons); err != nil {
		return err
	}
	if product == nil {
		return shared.NewValidationError("select a product")
	}
	if f.Quantity > product.Quantity {
		return shared.NewValidationError("quantity exceeds available stock")
	}
	if f.CustomerID != nil && f.CreditAmount != nil {
		if f.CreditAmount.Sign() < 0 {
			return shared.NewValidationError("credit amount cannot be negative")
		}
		revenue := product.SellingPrice.Mul(decimal.NewFromInt(f.Quantity))
		if f.CreditAmount.GreaterThan(revenue) {
			return shared.NewValidationError("credit amount cannot exceed the sale total")
		}
	}
	return nil
}
