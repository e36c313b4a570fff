package debtors

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/shared"
)

// Controller drives the debtors page. Reference data is the debtor list and
// the product list (for borrow-again and new credit sales). Per-row payment
// amounts live in a map keyed by customer id with a single set operation,
// cleared when the row's payment succeeds.
type Controller struct {
	log      *slog.Logger
	api      *API
	products *catalog.API

	phase       shared.Phase
	loadErr     error
	debtorList  []Customer
	productList []catalog.Product
	payments    map[int64]decimal.Decimal

	CreditSale CreditSaleForm
	Borrow     BorrowForm
}

// NewController constructs the debtors page controller.
func NewController(log *slog.Logger, api *API, products *catalog.API) *Controller {
	return &Controller{
		log:      log,
		api:      api,
		products: products,
		phase:    shared.PhaseIdle,
		payments: make(map[int64]decimal.Decimal),
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

// Debtors returns the fetched debtor list.
func (c *Controller) Debtors() []Customer {
	return c.debtorList
}

// Products returns the fetched product list.
func (c *Controller) Products() []catalog.Product {
	return c.productList
}

// Load fetches debtors and products concurrently. Either fetch failing is a
// full failed load; calling Load again retries both.
func (c *Controller) Load(ctx context.Context) error {
	c.phase = shared.PhaseLoading
	return c.refresh(ctx)
}

// SetPaymentAmount records the entered payment amount for one debtor row.
func (c *Controller) SetPaymentAmount(customerID int64, amount decimal.Decimal) {
	c.payments[customerID] = amount
}

// PaymentAmount returns the entered payment amount for one debtor row.
func (c *Controller) PaymentAmount(customerID int64) decimal.Decimal {
	return c.payments[customerID]
}

// NewDebtPreview is the opening balance the credit sale form would create,
// recomputed from the current inputs. Zero until a product is selected.
func (c *Controller) NewDebtPreview() decimal.Decimal {
	product := catalog.Find(c.productList, c.CreditSale.ProductID)
	if product == nil || c.CreditSale.Quantity <= 0 {
		return decimal.Zero
	}
	total := product.SellingPrice.Mul(decimal.NewFromInt(c.CreditSale.Quantity))
	return NewDebt(total, c.CreditSale.AmountPaid)
}

// SubmitPayment validates and posts the payment entered for one debtor. On
// success the row's entered amount is cleared and the list re-fetched.
func (c *Controller) SubmitPayment(ctx context.Context, customerID int64) error {
	if c.phase != shared.PhaseReady {
		return shared.ErrNotLoaded
	}
	debtor := Find(c.debtorList, customerID)
	if debtor == nil {
		return shared.ErrNotFound
	}
	form := PaymentForm{Amount: c.payments[customerID]}
	if err := form.Validate(debtor.Balance); err != nil {
		return err
	}

	c.phase = shared.PhaseSubmitting
	err := c.api.PayDebt(ctx, PayDebtRequest{CustomerID: customerID, Amount: form.Amount})
	if err != nil {
		c.phase = shared.PhaseReady
		return err
	}

	c.log.Info("debt payment recorded",
		slog.Int64("customer_id", customerID),
		slog.String("amount", form.Amount.String()),
	)
	delete(c.payments, customerID)
	return c.refresh(ctx)
}

// SubmitCreditSale validates and posts the new-debtor credit sale form. On
// success the form is reset and the lists re-fetched.
func (c *Controller) SubmitCreditSale(ctx context.Context) error {
	if c.phase != shared.PhaseReady {
		return shared.ErrNotLoaded
	}
	product := catalog.Find(c.productList, c.CreditSale.ProductID)
	if err := c.CreditSale.Validate(product); err != nil {
		return err
	}

	c.phase = shared.PhaseSubmitting
	req := CreditSaleRequest{
		Name:       strings.TrimSpace(c.CreditSale.Name),
		ProductID:  c.CreditSale.ProductID,
		Quantity:   c.CreditSale.Quantity,
		AmountPaid: c.CreditSale.AmountPaid,
	}
	if _, err := c.api.CreditSale(ctx, req); err != nil {
		c.phase = shared.PhaseReady
		return err
	}

	c.log.Info("credit sale recorded", slog.String("customer", req.Name))
	c.CreditSale = CreditSaleForm{}
	return c.refresh(ctx)
}

// SubmitBorrow validates and posts additional borrowing for an existing
// debtor. On success the form is reset and the lists re-fetched.
func (c *Controller) SubmitBorrow(ctx context.Context, customerID int64) error {
	if c.phase != shared.PhaseReady {
		return shared.ErrNotLoaded
	}
	if Find(c.debtorList, customerID) == nil {
		return shared.ErrNotFound
	}
	if err := c.Borrow.Validate(); err != nil {
		return err
	}

	c.phase = shared.PhaseSubmitting
	req := BorrowRequest{
		CustomerID: customerID,
		ProductID:  c.Borrow.ProductID,
		Quantity:   c.Borrow.Quantity,
	}
	if err := c.api.Borrow(ctx, req); err != nil {
		c.phase = shared.PhaseReady
		return err
	}

	c.log.Info("borrow recorded", slog.Int64("customer_id", customerID))
	c.Borrow = BorrowForm{}
	return c.refresh(ctx)
}

// History fetches one customer's borrow records; it does not change the
// page lifecycle state.
func (c *Controller) History(ctx context.Context, customerID int64) ([]BorrowRecord, error) {
	return c.api.History(ctx, customerID)
}

func (c *Controller) refresh(ctx context.Context) error {
	var (
		debtorList  []Customer
		productList []catalog.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		debtorList, err = c.api.ListDebtors(gctx)
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
	c.debtorList = debtorList
	c.productList = productList
	c.loadErr = nil
	c.phase = shared.PhaseReady
	return nil
}
