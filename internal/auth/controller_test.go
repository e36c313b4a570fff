package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdesk/shopdesk/internal/api"
	"github.com/shopdesk/shopdesk/internal/apitest"
	"github.com/shopdesk/shopdesk/internal/shared"
)

func newTestController(t *testing.T) (*Controller, *shared.Session, *shared.TokenStore, *apitest.Server) {
	t.Helper()
	backend := apitest.NewServer()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := shared.NewSession()
	tokens := shared.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	client := api.New(srv.URL, 5*time.Second, session, log)
	return NewController(log, NewAPI(client), session, tokens), session, tokens, backend
}

func TestControllerLogin(t *testing.T) {
	ctrl, session, tokens, _ := newTestController(t)

	req := LoginRequest{Email: "amina@shop.example", Password: "hunter22"}
	require.NoError(t, ctrl.Login(context.Background(), req))

	assert.True(t, session.Authenticated())
	assert.Equal(t, "amina@shop.example", session.DisplayName())

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, session.Token(), stored, "credential persisted for the next run")
}

func TestControllerLoginValidation(t *testing.T) {
	ctrl, session, _, backend := newTestController(t)

	err := ctrl.Login(context.Background(), LoginRequest{Email: "not-an-email", Password: "pw"})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, "enter a valid email address", err.Error())
	assert.Equal(t, 0, backend.RequestCount(http.MethodPost, "/auth/login"), "no request on rejection")
	assert.False(t, session.Authenticated())
}

func TestControllerRegisterValidation(t *testing.T) {
	ctrl, _, _, _ := newTestController(t)

	err := ctrl.Register(context.Background(), RegisterRequest{Email: "a@b.co", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())

	err = ctrl.Register(context.Background(), RegisterRequest{Name: "Amina", Email: "a@b.co", Password: "short"})
	require.Error(t, err)
	assert.Equal(t, "password must be at least 6 characters", err.Error())
}

func TestControllerLogout(t *testing.T) {
	ctrl, session, tokens, _ := newTestController(t)
	require.NoError(t, ctrl.Login(context.Background(), LoginRequest{Email: "amina@shop.example", Password: "pw"}))

	require.NoError(t, ctrl.Logout())
	assert.False(t, session.Authenticated())

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored, "stored credential removed")
}

func TestControllerForgotPassword(t *testing.T) {
	ctrl, _, _, backend := newTestController(t)
	require.NoError(t, ctrl.ForgotPassword(context.Background(), "amina@shop.example"))
	assert.Equal(t, 1, backend.RequestCount(http.MethodPost, "/auth/forgot-password"))
}
