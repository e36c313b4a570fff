package dashboard

import (
	"context"

	"github.com/shopdesk/shopdesk/internal/api"
)

// API is the typed surface over the dashboard endpoints.
type API struct {
	client *api.Client
}

// NewAPI constructs the dashboard API.
func NewAPI(client *api.Client) *API {
	return &API{client: client}
}

// GetSummary fetches the aggregate metrics card.
func (a *API) GetSummary(ctx context.Context) (*Summary, error) {
	var summary Summary
	if err := a.client.Get(ctx, "/dashboard/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetLine fetches the (possibly sparse) daily sales series.
func (a *API) GetLine(ctx context.Context) ([]DayPoint, error) {
	var series []DayPoint
	if err := a.client.Get(ctx, "/dashboard/line", &series); err != nil {
		return nil, err
	}
	return series, nil
}

// GetPie fetches the category breakdown.
func (a *API) GetPie(ctx context.Context) ([]PieSlice, error) {
	var slices []PieSlice
	if err := a.client.Get(ctx, "/dashboard/pie", &slices); err != nil {
		return nil, err
	}
	return slices, nil
}

// GetTopProducts fetches the best-sellers list.
func (a *API) GetTopProducts(ctx context.Context) ([]TopProduct, error) {
	var products []TopProduct
	if err := a.client.Get(ctx, "/dashboard/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}
