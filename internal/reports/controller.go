package reports

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopdesk/shopdesk/internal/shared"
)

// ExportFormat selects which binary export to download.
type ExportFormat string

const (
	ExportExcel ExportFormat = "excel"
	ExportPDF   ExportFormat = "pdf"
)

// Controller drives the reports page.
type Controller struct {
	log *slog.Logger
	api *API

	phase   shared.Phase
	loadErr error
	lines   []Line
}

// NewController constructs the reports page controller.
func NewController(log *slog.Logger, api *API) *Controller {
	return &Controller{log: log, api: api, phase: shared.PhaseIdle}
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() shared.Phase {
	return c.phase
}

// LoadError returns the error that put the page in the failed state.
func (c *Controller) LoadError() error {
	return c.loadErr
}

// Lines returns the fetched report rows.
func (c *Controller) Lines() []Line {
	return c.lines
}

// Summary returns the client-side aggregate totals over the fetched rows.
func (c *Controller) Summary() Summary {
	return Totals(c.lines)
}

// Load fetches the report table. A failed load is recoverable by calling
// Load again.
func (c *Controller) Load(ctx context.Context) error {
	c.phase = shared.PhaseLoading
	lines, err := c.api.ProductReport(ctx)
	if err != nil {
		c.phase = shared.PhaseFailed
		c.loadErr = err
		return err
	}
	c.lines = lines
	c.loadErr = nil
	c.phase = shared.PhaseReady
	return nil
}

// SaveExport downloads the chosen export to the given path. The blob is
// written as received, never interpreted.
func (c *Controller) SaveExport(ctx context.Context, format ExportFormat, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var contentType string
	switch format {
	case ExportExcel:
		contentType, err = c.api.ExportExcel(ctx, f)
	case ExportPDF:
		contentType, err = c.api.ExportPDF(ctx, f)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}

	c.log.Info("report exported",
		slog.String("format", string(format)),
		slog.String("path", path),
		slog.String("content_type", contentType),
	)
	return nil
}
