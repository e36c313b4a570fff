// Package api wraps all outbound calls to the shop backend behind a single
// client with a uniform request, response and error shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shopdesk/shopdesk/internal/shared"
)

// Error is a non-2xx backend response. Message is the server-supplied
// human-readable text when present, else a generic fallback.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// errorEnvelope covers the message shapes the backend is known to emit.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// Client performs HTTP calls against the backend. It attaches the bearer
// credential from the injected session when one is held; it never retries,
// caches or queues.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *shared.Session
	log        *slog.Logger
}

// New constructs a client for the given base URL.
func New(baseURL string, timeout time.Duration, session *shared.Session, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		session: session,
		log:     log,
	}
}

// Get issues a GET and decodes the JSON response into out (skipped when out
// is nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
// Every POST carries a fresh Idempotency-Key so the backend can drop an
// accidental duplicate submission.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Download streams an opaque binary export into w without interpreting it.
// It returns the response content type for filename selection.
func (c *Client) Download(ctx context.Context, path string, w io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.decodeError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("save download: %w", err)
	}
	return resp.Header.Get("Content-Type"), nil
}

// authorize attaches the bearer credential when the session holds one.
// Absence of a credential is not an error; login and register run without
// one.
func (c *Client) authorize(req *http.Request) {
	if c.session == nil {
		return
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}
	var envelope errorEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&envelope); err == nil {
		for _, msg := range []string{envelope.Error, envelope.Message, envelope.Detail} {
			if msg != "" {
				apiErr.Message = msg
				break
			}
		}
	}
	if c.log != nil {
		c.log.Warn("backend error",
			slog.String("path", resp.Request.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
	}
	return apiErr
}
