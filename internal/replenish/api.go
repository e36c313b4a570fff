package replenish

import (
	"context"

	"github.com/shopdesk/shopdesk/internal/api"
)

// API is the typed surface over the replenishment endpoints.
type API struct {
	client *api.Client
}

// NewAPI constructs the replenishment API.
func NewAPI(client *api.Client) *API {
	return &API{client: client}
}

// List fetches all stock batches.
func (a *API) List(ctx context.Context) ([]Batch, error) {
	var batches []Batch
	if err := a.client.Get(ctx, "/replenish", &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// Create records a new stock batch.
func (a *API) Create(ctx context.Context, req CreateBatchRequest) (*Batch, error) {
	var batch Batch
	if err := a.client.Post(ctx, "/replenish", req, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}
