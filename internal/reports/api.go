package reports

import (
	"context"
	"io"

	"github.com/shopdesk/shopdesk/internal/api"
)

// API is the typed surface over the report endpoints.
type API struct {
	client *api.Client
}

// NewAPI constructs the reports API.
func NewAPI(client *api.Client) *API {
	return &API{client: client}
}

// ProductReport fetches the per-product report table.
func (a *API) ProductReport(ctx context.Context) ([]Line, error) {
	var lines []Line
	if err := a.client.Get(ctx, "/reports/products", &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// ExportExcel streams the Excel export into w as an opaque blob.
func (a *API) ExportExcel(ctx context.Context, w io.Writer) (string, error) {
	return a.client.Download(ctx, "/reports/export/excel", w)
}

// ExportPDF streams the PDF export into w as an opaque blob.
func (a *API) ExportPDF(ctx context.Context, w io.Writer) (string, error) {
	return a.client.Download(ctx, "/reports/export/pdf", w)
}
