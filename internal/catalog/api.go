package catalog

import (
	"context"

	"github.com/shopdesk/shopdesk/internal/api"
)

// API is the typed surface over the product endpoints.
type API struct {
	client *api.Client
}

// NewAPI constructs the product API.
func NewAPI(client *api.Client) *API {
	return &API{client: client}
}

// List fetches all products.
func (a *API) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := a.client.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create records a new product.
func (a *API) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var product Product
	if err := a.client.Post(ctx, "/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Find returns the product with the given id from an already fetched list.
func Find(products []Product, id int64) *Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
