package auth

import (
	"context"

	"github.com/shopdesk/shopdesk/internal/api"
)

// API is the typed surface over the auth endpoints. These run without a
// bearer credential.
type API struct {
	client *api.Client
}

// NewAPI constructs the auth API.
func NewAPI(client *api.Client) *API {
	return &API{client: client}
}

// Login exchanges credentials for a bearer token.
func (a *API) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := a.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its first bearer token.
func (a *API) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := a.client.Post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword starts the reset flow for the given email.
func (a *API) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	return a.client.Post(ctx, "/auth/forgot-password", req, nil)
}
