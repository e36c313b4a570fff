package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdesk/shopdesk/internal/shared"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestSaleFormValidate(t *testing.T) {
	customerID := int64(9)
	stocked := product(600, 1000)

	cases := []struct {
		name   string
		form   SaleForm
		reason string
	}{
		{
			name:   "product wins over quantity",
			form:   SaleForm{},
			reason: "select a product",
		},
		{
			name:   "quantity required",
			form:   SaleForm{ProductID: 1},
			reason: "quantity must be greater than zero",
		},
		{
			name:   "quantity above stock",
			form:   SaleForm{ProductID: 1, Quantity: 51},
			reason: "quantity exceeds available stock",
		},
		{
			name: "credit above revenue",
			form: SaleForm{
				ProductID:    1,
				Quantity:     2,
				CustomerID:   &customerID,
				CreditAmount: amount(2001),
			},
			reason: "credit amount cannot exceed the sale total",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate(stocked)
			require.Error(t, err)
			assert.True(t, shared.IsValidation(err))
			assert.Equal(t, tc.reason, err.Error())
		})
	}
}

func TestSaleFormValidateAccepts(t *testing.T) {
	customerID := int64(9)
	stocked := product(600, 1000)

	assert.NoError(t, SaleForm{ProductID: 1, Quantity: 3}.Validate(stocked))
	assert.NoError(t, SaleForm{ProductID: 1, Quantity: 50}.Validate(stocked), "full stock is allowed")

	form := SaleForm{ProductID: 1, Quantity: 2, CustomerID: &customerID, CreditAmount: amount(2000)}
	assert.NoError(t, form.Validate(stocked), "credit equal to revenue is allowed")

	form = SaleForm{ProductID: 1, Quantity: 2, CustomerID: &customerID}
	assert.NoError(t, form.Validate(stocked), "customer without credit amount skips the credit rule")
}

func TestSaleFormValidateUnknownProduct(t *testing.T) {
	err := SaleForm{ProductID: 404, Quantity: 1}.Validate(nil)
	require.Error(t, err)
	assert.Equal(t, "select a product", err.Error())
}
