package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopdesk/shopdesk/internal/shared"
)

// Controller drives the products page: list on load, create on submit.
type Controller struct {
	log *slog.Logger
	api *API

	phase    shared.Phase
	loadErr  error
	products []Product

	Form ProductForm
}

// NewController constructs the products page controller.
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

// Products returns the fetched product list.
func (c *Controller) Products() []Product {
	return c.products
}

// Load fetches the product list. A failed load is recoverable by calling
// Load again.
func (c *Controller) Load(ctx context.Context) error {
	c.phase = shared.PhaseLoading
	return c.refresh(ctx)
}

// SubmitCreate validates the form and creates the product. A validation
// rejection makes no network call and leaves the form unchanged; success
// resets the form and re-fetches the list.
func (c *Controller) SubmitCreate(ctx context.Context) error {
	if c.phase != shared.PhaseReady {
		return shared.ErrNotLoaded
	}
	if err := c.Form.Validate(); err != nil {
		return err
	}

	c.phase = shared.PhaseSubmitting
	req := CreateProductRequest{
		Name:         strings.TrimSpace(c.Form.Name),
		Quantity:     c.Form.Quantity,
		CostPrice:    c.Form.CostPrice,
		SellingPrice: c.Form.SellingPrice,
	}
	if _, err := c.api.Create(ctx, req); err != nil {
		c.phase = shared.PhaseReady
		return err
	}

	c.log.Info("product created", slog.String("name", req.Name))
	c.Form = ProductForm{}
	return c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) error {
	products, err := c.api.List(ctx)
	if err != nil {
		c.phase = shared.PhaseFailed
		c.loadErr = err
		return err
	}
	c.products = products
	c.loadErr = nil
	c.phase = shared.PhaseReady
	return nil
}
