package sales

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdesk/shopdesk/internal/api"
	"github.com/shopdesk/shopdesk/internal/apitest"
	"github.com/shopdesk/shopdesk/internal/catalog"
	"github.com/shopdesk/shopdesk/internal/debtors"
	"github.com/shopdesk/shopdesk/internal/shared"
)

func newTestController(t *testing.T) (*Controller, *apitest.Server) {
	t.Helper()
	backend := apitest.NewServer()
	backend.Products = []apitest.Product{
		{ID: 1, Name: "Sugar 1kg", Quantity: 50, CostPrice: decimal.NewFromInt(600), SellingPrice: decimal.NewFromInt(1000)},
		{ID: 2, Name: "Rice 5kg", Quantity: 10, CostPrice: decimal.NewFromInt(4000), SellingPrice: decimal.NewFromInt(5500)},
	}
	backend.Customers = []apitest.Customer{
		{ID: 9, Name: "Amina", Balance: decimal.NewFromInt(5000)},
	}

	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.New(srv.URL, 5*time.Second, shared.NewSession(), log)
	ctrl := NewController(log, NewAPI(client), catalog.NewAPI(client), debtors.NewAPI(client))
	return ctrl, backend
}

func TestControllerLoad(t *testing.T) {
	ctrl, _ := newTestController(t)
	assert.Equal(t, shared.PhaseIdle, ctrl.Phase())

	require.NoError(t, ctrl.Load(context.Background()))
	assert.Equal(t, shared.PhaseReady, ctrl.Phase())
	assert.Len(t, ctrl.Products(), 2)
	assert.Len(t, ctrl.Customers(), 1)
}

func TestControllerLoadPartialFailure(t *testing.T) {
	ctrl, backend := newTestController(t)
	backend.FailWith(http.MethodGet, "/customers", http.StatusInternalServerError, "database down")

	err := ctrl.Load(context.Background())
	require.Error(t, err, "one failing fetch fails the whole load")
	assert.Equal(t, shared.PhaseFailed, ctrl.Phase())
	assert.Error(t, ctrl.LoadError())

	backend.ClearFailures()
	require.NoError(t, ctrl.Load(context.Background()), "failed load is recoverable via retry")
	assert.Equal(t, shared.PhaseReady, ctrl.Phase())
}

func TestControllerSubmitRejectedMakesNoCall(t *testing.T) {
	ctrl, backend := newTestController(t)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.Form.ProductID = 1
	ctrl.Form.Quantity = 51 // above stock

	err := ctrl.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, 0, backend.RequestCount(http.MethodPost, "/sales"))
	assert.Equal(t, shared.PhaseReady, ctrl.Phase())
	assert.Equal(t, int64(51), ctrl.Form.Quantity, "rejected form stays unchanged")
}

func TestControllerSubmitSuccess(t *testing.T) {
	ctrl, backend := newTestController(t)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.Form.ProductID = 1
	ctrl.Form.Quantity = 3

	details, ok := ctrl.Preview()
	require.True(t, ok)
	assert.Equal(t, "40.0", details.Margin)

	require.NoError(t, ctrl.Submit(context.Background()))
	assert.Equal(t, 1, backend.RequestCount(http.MethodPost, "/sales"))
	assert.Equal(t, shared.PhaseReady, ctrl.Phase())
	assert.Equal(t, SaleForm{}, ctrl.Form, "form resets after success")

	refreshed := catalog.Find(ctrl.Products(), 1)
	require.NotNil(t, refreshed)
	assert.Equal(t, int64(47), refreshed.Quantity, "re-fetched list reflects the decrement")
}

func TestControllerSubmitBackendError(t *testing.T) {
	ctrl, backend := newTestController(t)
	require.NoError(t, ctrl.Load(context.Background()))
	backend.FailWith(http.MethodPost, "/sales", http.StatusBadRequest, "insufficient stock")

	ctrl.Form.ProductID = 1
	ctrl.Form.Quantity = 3

	err := ctrl.Submit(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "insufficient stock", apiErr.Message)
	assert.Equal(t, shared.PhaseReady, ctrl.Phase())
	assert.Equal(t, int64(3), ctrl.Form.Quantity, "form survives a backend rejection")
}

func TestControllerCreditSale(t *testing.T) {
	ctrl, backend := newTestController(t)
	require.NoError(t, ctrl.Load(context.Background()))

	customerID := int64(9)
	credit := decimal.NewFromInt(1500)
	ctrl.Form.ProductID = 1
	ctrl.Form.Quantity = 3
	ctrl.Form.CustomerID = &customerID
	ctrl.Form.CreditAmount = &credit

	require.NoError(t, ctrl.Submit(context.Background()))
	require.Len(t, backend.Customers, 1)
	assert.True(t, backend.Customers[0].Balance.Equal(decimal.NewFromInt(6500)),
		"credit amount lands on the customer ledger, got %s", backend.Customers[0].Balance)
}
