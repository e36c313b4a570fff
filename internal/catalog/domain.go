// Package catalog implements the products page: the product list and the
// creation form.
package catalog

import "github.com/shopspring/decimal"

// Product is the backend's product record. The quantity is a point-in-time
// snapshot used for preview math; the backend copy is authoritative.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// CreateProductRequest is the POST /products payload.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}
