// Package debtors implements the debtors page: customers with outstanding
// balance, debt payments, additional borrowing and new-debtor credit sales.
package debtors

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the backend's customer record. Balance is the outstanding
// debt owed to the shop; it decreases on payment and increases on credit.
type Customer struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// BorrowRecord is one append-only history entry; read-only on the client.
type BorrowRecord struct {
	ProductName string    `json:"productName"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
}

// CreditSaleRequest is the POST /customers/credit-sale payload. It creates
// a new debtor whose opening balance is the unpaid part of the sale.
type CreditSaleRequest struct {
	Name       string          `json:"name"`
	ProductID  int64           `json:"productId"`
	Quantity   int64           `json:"quantity"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
}

// PayDebtRequest is the POST /customers/pay-debt payload.
type PayDebtRequest struct {
	CustomerID int64           `json:"customerId"`
	Amount     decimal.Decimal `json:"amount"`
}

// BorrowRequest is the POST /customers/borrow payload.
type BorrowRequest struct {
	CustomerID int64 `json:"customerId"`
	ProductID  int64 `json:"productId"`
	Quantity   int64 `json:"quantity"`
}
