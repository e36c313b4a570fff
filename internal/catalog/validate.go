package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/shared"
)

// ProductForm captures the creation inputs. Fields are declared in rule
// precedence order; the first failing rule supplies the rejection reason.
type ProductForm struct {
	Name         string          `validate:"required"`
	Quantity     int64           `validate:"required,gt=0"`
	CostPrice    decimal.Decimal `validate:"-"`
	SellingPrice decimal.Decimal `validate:"-"`
}

var productReasons = map[string]string{
	"Name":     "product name is required",
	"Quantity": "quantity, cost price and selling price must all be greater than zero",
}

// Validate gates submission; nil means the form is accepted.
func (f ProductForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	if err := shared.FirstReason(shared.FormValidator.Struct(f), productReasons); err != nil {
		return err
	}
	if f.CostPrice.Sign() <= 0 || f.SellingPrice.Sign() <= 0 {
		return shared.NewValidationError("quantity, cost price and selling price must all be greater than zero")
	}
	return nil
}
