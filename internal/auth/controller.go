package auth

import (
	"context"
	"log/slog"

	"github.com/shopdesk/shopdesk/internal/shared"
)

var (
	loginReasons = map[string]string{
		"Email.required": "email is required",
		"Email.email":    "enter a valid email address",
		"Password":       "password is required",
	}
	registerReasons = map[string]string{
		"Name":           "name is required",
		"Email.required": "email is required",
		"Email.email":    "enter a valid email address",
		"Password.required": "password is required",
		"Password.min":      "password must be at least 6 characters",
	}
)

// Controller owns the session lifecycle: it initialises the session on
// login success and tears it down on logout, persisting the credential in
// between.
type Controller struct {
	log     *slog.Logger
	api     *API
	session *shared.Session
	tokens  *shared.TokenStore
}

// NewController constructs the auth controller.
func NewController(log *slog.Logger, api *API, session *shared.Session, tokens *shared.TokenStore) *Controller {
	return &Controller{log: log, api: api, session: session, tokens: tokens}
}

// Login exchanges credentials for a token, starts the session and persists
// the credential.
func (c *Controller) Login(ctx context.Context, req LoginRequest) error {
	if err := shared.FirstReason(shared.FormValidator.Struct(req), loginReasons); err != nil {
		return err
	}
	resp, err := c.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return c.install(resp.Token)
}

// Register creates an account and starts the session with its first token.
func (c *Controller) Register(ctx context.Context, req RegisterRequest) error {
	if err := shared.FirstReason(shared.FormValidator.Struct(req), registerReasons); err != nil {
		return err
	}
	resp, err := c.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return c.install(resp.Token)
}

// ForgotPassword starts the reset flow.
func (c *Controller) ForgotPassword(ctx context.Context, email string) error {
	req := ForgotPasswordRequest{Email: email}
	if err := shared.FirstReason(shared.FormValidator.Struct(req), loginReasons); err != nil {
		return err
	}
	return c.api.ForgotPassword(ctx, req)
}

// Logout tears the session down and removes the stored credential.
func (c *Controller) Logout() error {
	c.session.Clear()
	if err := c.tokens.Clear(); err != nil {
		return err
	}
	c.log.Info("logged out")
	return nil
}

func (c *Controller) install(token string) error {
	c.session.Start(token)
	if err := c.tokens.Save(token); err != nil {
		return err
	}
	c.log.Info("logged in", slog.String("user", c.session.DisplayName()))
	return nil
}
