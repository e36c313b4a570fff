package catalog

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
	"github.com/shopdesk/shopdesk/internal/shared"
)

func newTestController(t *testing.T) (*Controller, *apitest.Server) {
	t.Helper()
	backend := apitest.NewServer()
	backend.Products = []apitest.Product{
		{ID: 1, Name: "Sugar 1kg", Quantity: 50, CostPrice: decimal.NewFromInt(600), SellingPrice: decimal.NewFromInt(1000)},
	}

	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.New(srv.URL, 5*time.Second, shared.NewSession(), log)
	return NewController(log, NewAPI(client)), backend
}

func TestControllerCreate(t *testing.T) {
	ctrl, backend := newTestController(t)
	require.NoError(t, ctrl.Load(context.Background()))
	require.Len(t, ctrl.Products(), 1)

	ctrl.Form = ProductForm{
		Name:         "Rice 5kg",
		Quantity:     20,
		CostPrice:    decimal.NewFromInt(4000),
		SellingPrice: decimal.NewFromInt(5500),
	}
	require.NoError(t, ctrl.SubmitCreate(context.Background()))

	assert.Equal(t, ProductForm{}, ctrl.Form, "form resets after success")
	assert.Len(t, ctrl.Products(), 2, "list re-fetched with the new product")
	assert.Equal(t, 1, backend.RequestCount(http.MethodPost, "/products"))
}

func TestControllerCreateRejectedMakesNoCall(t *testing.T) {
	ctrl, backend := newTestController(t)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.Form = ProductForm{Name: "Rice 5kg"}
	err := ctrl.SubmitCreate(context.Background())
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, 0, backend.RequestCount(http.MethodPost, "/products"))
	assert.Equal(t, "Rice 5kg", ctrl.Form.Name, "rejected form stays unchanged")
}

func TestControllerSubmitBeforeLoad(t *testing.T) {
	ctrl, _ := newTestController(t)
	err := ctrl.SubmitCreate(context.Background())
	assert.ErrorIs(t, err, shared.ErrNotLoaded)
}
