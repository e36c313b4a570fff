package shared

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the authenticated identity for the running client. It is
// initialised from a stored or freshly issued bearer token and injected into
// every component that needs the credential or the display name, replacing
// ad hoc storage lookups.
type Session struct {
	token     string
	name      string
	expiresAt *time.Time
	now       func() time.Time
}

// NewSession returns an unauthenticated session.
func NewSession() *Session {
	return &Session{now: time.Now}
}

// Start installs a bearer token. Expiry and display name are read from the
// token claims without verifying the signature; verification is the
// backend's responsibility. A token that does not parse as a JWT is kept as
// an opaque credential with no known expiry.
func (s *Session) Start(token string) {
	s.token = strings.TrimSpace(token)
	s.name = ""
	s.expiresAt = nil
	if s.token == "" {
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		s.expiresAt = &t
	}
	for _, key := range []string{"name", "username", "email"} {
		if v, ok := claims[key].(string); ok && v != "" {
			s.name = v
			break
		}
	}
}

// Clear tears the session down.
func (s *Session) Clear() {
	s.token = ""
	s.name = ""
	s.expiresAt = nil
}

// Token returns the bearer credential, or "" when none is held or the held
// token has expired. An expired token is indistinguishable from no token.
func (s *Session) Token() string {
	if s.token == "" {
		return ""
	}
	if s.expiresAt != nil && !s.expiresAt.After(s.now()) {
		return ""
	}
	return s.token
}

// Authenticated reports whether a usable credential is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// DisplayName returns the identity name from the token claims, if any.
func (s *Session) DisplayName() string {
	if !s.Authenticated() {
		return ""
	}
	return s.name
}

// TokenStore persists the bearer credential across client runs.
type TokenStore struct {
	path string
}

// NewTokenStore constructs a store writing to the given file path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Load reads the stored token. A missing file yields an empty token, not an
// error.
func (ts *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(ts.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating parent directories as needed.
func (ts *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(ts.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(ts.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (ts *TokenStore) Clear() error {
	if err := os.Remove(ts.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
