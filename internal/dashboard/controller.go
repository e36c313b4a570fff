package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shopdesk/shopdesk/internal/shared"
)

// trailingWindowDays is the width of the landing chart's time window.
const trailingWindowDays = 7

// Controller drives the landing view. All four dashboard fetches run
// concurrently; any one failing is a full failed load.
type Controller struct {
	log *slog.Logger
	api *API
	now func() time.Time

	phase   shared.Phase
	loadErr error

	summary     *Summary
	series      []DayPoint
	pie         []PieSlice
	topProducts []TopProduct
}

// NewController constructs the dashboard controller.
func NewController(log *slog.Logger, api *API) *Controller {
	return &Controller{log: log, api: api, now: time.Now, phase: shared.PhaseIdle}
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() shared.Phase {
	return c.phase
}

// LoadError returns the error that put the page in the failed state.
func (c *Controller) LoadError() error {
	return c.loadErr
}

// SummaryCard returns the aggregate metrics.
func (c *Controller) SummaryCard() *Summary {
	return c.summary
}

// Pie returns the category breakdown.
func (c *Controller) Pie() []PieSlice {
	return c.pie
}

// TopProducts returns the best-sellers list.
func (c *Controller) TopProducts() []TopProduct {
	return c.topProducts
}

// Week normalises the fetched series onto the trailing seven calendar days,
// oldest first, with zero records for days the backend did not report.
func (c *Controller) Week() []DayPoint {
	return FillMissingDays(c.series, TrailingDays(c.now(), trailingWindowDays))
}

// Load fetches all dashboard data concurrently. A failed load is
// recoverable by calling Load again.
func (c *Controller) Load(ctx context.Context) error {
	c.phase = shared.PhaseLoading

	var (
		summary     *Summary
		series      []DayPoint
		pie         []PieSlice
		topProducts []TopProduct
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = c.api.GetSummary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		series, err = c.api.GetLine(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pie, err = c.api.GetPie(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		topProducts, err = c.api.GetTopProducts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.phase = shared.PhaseFailed
		c.loadErr = err
		return err
	}

	c.summary = summary
	c.series = series
	c.pie = pie
	c.topProducts = topProducts
	c.loadErr = nil
	c.phase = shared.PhaseReady
	return nil
}
