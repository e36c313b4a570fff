package replenish

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/shared"
)

// BatchView is a batch decorated with its derived display values.
type BatchView struct {
	Batch
	Expiry    ExpiryStatus
	Margin    string
	HasMargin bool
}

// Controller drives the replenishment page. Reference data is the batch
// list and the product list, fetched concurrently on load.
type Controller struct {
	log      *slog.Logger
	api      *API
	products *catalog.API
	now      func() time.Time

	phase       shared.Phase
	loadErr     error
	batchList   []Batch
	productList []catalog.Product

	Form BatchForm
}

// NewController constructs the replenishment page controller.
func NewController(log *slog.Logger, api *API, products *catalog.API) *Controller {
	return &Controller{
		log:      log,
		api:      api,
		products: products,
		now:      time.Now,
		phase:    shared.PhaseIdle,
	}
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() shared.Phase {
	return c.phase
}

// LoadError returns the error that put the page in the failed state.
func (c *Controller) LoadError() error {
	return c.loadErr
}

// Products returns the fetched product list.
func (c *Controller) Products() []catalog.Product {
	return c.productList
}

// Batches returns the fetched batches with expiry status and margin derived
// at the current instant. A zero-cost batch has no defined margin and
// renders "N/A".
func (c *Controller) Batches() []BatchView {
	now := c.now()
	views := make([]BatchView, 0, len(c.batchList))
	for _, b := range c.batchList {
		view := BatchView{
			Batch:  b,
			Expiry: BatchExpiry(b.ExpiryDate, now),
			Margin: "N/A",
		}
		if margin, ok := BatchMargin(b.CostPrice, b.SellingPrice); ok {
			view.Margin = margin.StringFixed(1)
			view.HasMargin = true
		}
		views = append(views, view)
	}
	return views
}

// Load fetches batches and products concurrently. Either fetch failing is a
// full failed load; calling Load again retries both.
func (c *Controller) Load(ctx context.Context) error {
	c.phase = shared.PhaseLoading
	return c.refresh(ctx)
}

// FormMargin previews the margin of the batch being entered.
func (c *Controller) FormMargin() (string, bool) {
	margin, ok := BatchMargin(c.Form.CostPrice, c.Form.SellingPrice)
	if !ok {
		return "N/A", false
	}
	return margin.StringFixed(1), true
}

// SubmitCreate validates the form and creates the batch. A validation
// rejection makes no network call and leaves the form unchanged; success
// resets the form and re-fetches both lists.
func (c *Controller) SubmitCreate(ctx context.Context) error {
	if c.phase != shared.PhaseReady {
		return shared.ErrNotLoaded
	}
	if err := c.Form.Validate(); err != nil {
		return err
	}

	c.phase = shared.PhaseSubmitting
	req := CreateBatchRequest{
		ProductID:    c.Form.ProductID,
		Quantity:     c.Form.Quantity,
		CostPrice:    c.Form.CostPrice,
		SellingPrice: c.Form.SellingPrice,
		ExpiryDate:   c.Form.ExpiryDate,
	}
	if _, err := c.api.Create(ctx, req); err != nil {
		c.phase = shared.PhaseReady
		return err
	}

	c.log.Info("batch created", slog.Int64("product_id", req.ProductID), slog.Int64("quantity", req.Quantity))
	c.Form = BatchForm{}
	return c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) error {
	var (
		batchList   []Batch
		productList []catalog.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		batchList, err = c.api.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		productList, err = c.products.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.phase = shared.PhaseFailed
		c.loadErr = err
		return err
	}
	c.batchList = batchList
	c.productList = productList
	c.loadErr = nil
	c.phase = shared.PhaseReady
	return nil
}
