package sales

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/debtors"
	"github.com/shopdesk/shopdesk/internal/shared"
)

// Controller drives the sales page. Reference data is the product list and
// the customer list, fetched concurrently on load.
type Controller struct {
	log       *slog.Logger
	api       *API
	products  *catalog.API
	customers *debtors.API

	phase        shared.Phase
	loadErr      error
	productList  []catalog.Product
	customerList []debtors.Customer

	Form SaleForm
}

// NewController constructs the sales page controller.
func NewController(log *slog.Logger, api *API, products *catalog.API, customers *debtors.API) *Controller {
	return &Controller{
		log:       log,
		api:       api,
		products:  products,
		customers: customers,
		phase:     shared.PhaseIdle,
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

// Customers returns the fetched customer list.
func (c *Controller) Customers() []debtors.Customer {
	return c.customerList
}

// Load fetches products and customers concurrently. Either fetch failing is
// a full failed load; calling Load again retries both.
func (c *Controller) Load(ctx context.Context) error {
	c.phase = shared.PhaseLoading
	return c.refresh(ctx)
}

// Preview recomputes the sale preview from the current form. It makes no
// network call.
func (c *Controller) Preview() (SaleDetails, bool) {
	product := catalog.Find(c.productList, c.Form.ProductID)
	return ComputeSaleDetails(product, c.Form.Quantity)
}

// RemainingDebtPreview is the balance the selected customer would carry
// after this sale, given the entered credit amount.
func (c *Controller) RemainingDebtPreview() decimal.Decimal {
	var customer *debtors.Customer
	if c.Form.CustomerID != nil {
		customer = debtors.Find(c.customerList, *c.Form.CustomerID)
	}
	var revenue decimal.Decimal
	if details, ok := c.Preview(); ok {
		revenue = details.Revenue
	}
	return debtors.RemainingDebt(customer, c.Form.CreditAmount, revenue)
}

// Submit validates the form and records the sale. A validation rejection
// makes no network call and leaves the form unchanged; success resets the
// form and re-fetches both lists.
func (c *Controller) Submit(ctx context.Context) error {
	if c.phase != shared.PhaseReady {
		return shared.ErrNotLoaded
	}
	product := catalog.Find(c.productList, c.Form.ProductID)
	if err := c.Form.Validate(product); err != nil {
		return err
	}

	c.phase = shared.PhaseSubmitting
	req := RecordSaleRequest{
		ProductID:    c.Form.ProductID,
		Quantity:     c.Form.Quantity,
		CustomerID:   c.Form.CustomerID,
		CreditAmount: c.Form.CreditAmount,
	}
	sale, err := c.api.Record(ctx, req)
	if err != nil {
		c.phase = shared.PhaseReady
		return err
	}

	c.log.Info("sale recorded",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("product_id", req.ProductID),
		slog.Int64("quantity", req.Quantity),
	)
	c.Form = SaleForm{}
	return c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) error {
	var (
		productList  []catalog.Product
		customerList []debtors.Customer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		productList, err = c.products.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerList, err = c.customers.ListCustomers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.phase = shared.PhaseFailed
		c.loadErr = err
		return err
	}
	c.productList = productList
	c.customerList = customerList
	c.loadErr = nil
	c.phase = shared.PhaseReady
	return nil
}
