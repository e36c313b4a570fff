package sales

import (
	"context"

	"github.com/shopdesk/shopdesk/internal/api"
)

// API is the typed surface over the sales endpoints.
type API struct {
	client *api.Client
}

// NewAPI constructs the sales API.
func NewAPI(client *api.Client) *API {
	return &API{client: client}
}

// Record posts a sale.
func (a *API) Record(ctx context.Context, req RecordSaleRequest) (*Sale, error) {
	var sale Sale
	if err := a.client.Post(ctx, "/sales", req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}
