// Package sales implements the sales page: recording sales, optionally tied
// to a customer with a partial-credit amount, with a live preview of the
// money outcome.
package sales

import "github.com/shopspring/decimal"

// RecordSaleRequest is the POST /sales payload. Derived preview values are
// never sent; the backend recomputes pricing from its own records.
type RecordSaleRequest struct {
	ProductID    int64            `json:"productId"`
	Quantity     int64            `json:"quantity"`
	CustomerID   *int64           `json:"customerId,omitempty"`
	CreditAmount *decimal.Decimal `json:"creditAmount,omitempty"`
}

// Sale is the backend's echo of a recorded sale.
type Sale struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
}
