package debtors

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/shared"
)

// CreditSaleForm captures the new-debtor credit sale inputs. Fields are
// declared in rule precedence order; the first failing rule supplies the
// rejection reason.
type CreditSaleForm struct {
	Name       string          `validate:"required"`
	ProductID  int64           `validate:"required,gt=0"`
	Quantity   int64           `validate:"required,gt=0"`
	AmountPaid decimal.Decimal `validate:"-"`
}

var creditSaleReasons = map[string]string{
	"Name":      "customer name is required",
	"ProductID": "select a product",
	"Quantity":  "quantity must be greater than zero",
}

// Validate gates submission against the selected product; nil means the
// form is accepted.
func (f CreditSaleForm) Validate(product *catalog.Product) error {
	f.Name = strings.TrimSpace(f.Name)
	if err := shared.FirstReason(shared.FormValidator.Struct(f), creditSaleReasons); err != nil {
		return err
	}
	if product == nil {
		return shared.NewValidationError("select a product")
	}
	if f.AmountPaid.Sign() < 0 {
		return shared.NewValidationError("amount paid cannot be negative")
	}
	total := product.SellingPrice.Mul(decimal.NewFromInt(f.Quantity))
	if f.AmountPaid.GreaterThan(total) {
		return shared.NewValidationError("amount paid cannot exceed the total amount")
	}
	return nil
}

// PaymentForm is the per-debtor payment amount.
type PaymentForm struct {
	Amount decimal.Decimal
}

// Validate checks the amount against the debtor's current balance.
func (f PaymentForm) Validate(balance decimal.Decimal) error {
	if f.Amount.Sign() <= 0 {
		return shared.NewValidationError("payment amount must be greater than zero")
	}
	if f.Amount.GreaterThan(balance) {
		return shared.NewValidationError("cannot pay more than the outstanding balance")
	}
	return nil
}

// BorrowForm captures the borrow-again inputs for an existing debtor.
type BorrowForm struct {
	ProductID int64 `validate:"required,gt=0"`
	Quantity  int64 `validate:"required,gt=0"`
}

var borrowReasons = map[string]string{
	"ProductID": "select a product",
	"Quantity":  "quantity must be greater than zero",
}

// Validate gates submission; nil means the form is accepted.
func (f BorrowForm) Validate() error {
	return shared.FirstReason(shared.FormValidator.Struct(f), borrowReasons)
}
