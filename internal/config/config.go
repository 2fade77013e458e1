// ABOUTME: Environment-driven configuration for the milhas CLI
// ABOUTME: Loads an optional .env file, then parses MILHAS_* variables

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings for the CLI.
type Config struct {
	// APIURL is the base URL of the wallet API, including the /api prefix.
	APIURL string `env:"MILHAS_API_URL, default=http://127.0.0.1:8000/api"`
	// ConfigDir overrides the directory used for tokens and the debug log.
	ConfigDir string `env:"MILHAS_CONFIG_DIR"`
	// LogLevel is the minimum log level: trace, debug, info, warn, error.
	LogLevel string `env:"MILHAS_LOG_LEVEL, default=info"`
	// HTTPTimeout bounds every API call.
	HTTPTimeout time.Duration `env:"MILHAS_HTTP_TIMEOUT, default=30s"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = DefaultConfigDir()
	}
	return &cfg, nil
}

// DefaultConfigDir returns the default config directory following XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "milhas")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "milhas")
}
