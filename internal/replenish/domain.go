// Package replenish implements the replenishment page: stock batches with
// their own cost/sell prices and optional expiry dates.
package replenish

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch is one stock lot. ExpiryDate is optional; a batch without one never
// counts as expired.
type Batch struct {
	ID                int64           `json:"id"`
	Product           string          `json:"product"`
	ProductID         int64           `json:"productId"`
	QuantityRemaining int64           `json:"quantityRemaining"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	ExpiryDate        *time.Time      `json:"expiryDate,omitempty"`
}

// CreateBatchRequest is the POST /replenish payload.
type CreateBatchRequest struct {
	ProductID    int64           `json:"productId"`
	Quantity     int64           `json:"quantity"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	ExpiryDate   *time.Time      `json:"expiryDate,omitempty"`
}
