package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the client.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	APIBaseURL     string        `envconfig:"API_BASE_URL" default:"http://127.0.0.1:5000/api"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	// TokenPath overrides where the bearer credential is persisted.
	// Defaults to <user config dir>/shopdesk/token.
	TokenPath string `envconfig:"TOKEN_PATH"`

	ExportDir string `envconfig:"EXPORT_DIR" default:"."`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.TokenPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.TokenPath = filepath.Join(dir, "shopdesk", "token")
	}
	return &cfg, nil
}

// IsProduction returns true when the client runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
