package debtors

import "github.com/shopspring/decimal"

// RemainingDebt previews the balance a customer would carry after a partial
// credit sale. With no customer selected the preview is zero; with no credit
// amount entered it is the current balance unchanged. The result never goes
// below zero.
func RemainingDebt(customer *Customer, creditAmount *decimal.Decimal, revenue decimal.Decimal) decimal.Decimal {
	if customer == nil {
		return decimal.Zero
	}
	if creditAmount == nil {
		return customer.Balance
	}
	remaining := customer.Balance.Add(*creditAmount).Sub(revenue)
	if remaining.Sign() < 0 {
		return decimal.Zero
	}
	return remaining
}

// NewDebt is the opening balance a brand-new debtor carries after a credit
// sale: the total less the amount paid up front, floored at zero.
func NewDebt(totalAmount, amountPaid decimal.Decimal) decimal.Decimal {
	debt := totalAmount.Sub(amountPaid)
	if debt.Sign() < 0 {
		return decimal.Zero
	}
	return debt
}
