// ABOUTME: Root command for the milhas CLI
// ABOUTME: Handles global flags and wiring of the client stack

package cmd

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/milhasdev/milhas-cli/internal/api"
	"github.com/milhasdev/milhas-cli/internal/auth"
	"github.com/milhasdev/milhas-cli/internal/config"
	"github.com/milhasdev/milhas-cli/internal/logger"
	"github.com/milhasdev/milhas-cli/internal/session"
	"github.com/milhasdev/milhas-cli/internal/token"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "milhas",
	Short: "CLI for the loyalty-points wallet API",
	Long: `milhas is a command-line front-end for the loyalty wallet service.

Manage wallets, loyalty accounts, programs, and point/mile transactions
from the terminal. Log in once; the session is kept in your config
directory and refreshed automatically when the access token expires.

Environment Variables:
  MILHAS_API_URL     Backend API URL (default: http://127.0.0.1:8000/api)
  MILHAS_CONFIG_DIR  Directory for tokens and the debug log
  MILHAS_LOG_LEVEL   Minimum log level (default: info)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides MILHAS_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// app bundles the client stack shared by every command.
type app struct {
	cfg     *config.Config
	store   *token.Store
	session *session.State
	engine  *auth.Engine
	client  *api.Client
}

// newApp loads configuration and wires the token store, auth engine,
// decorated http client, and API client. Flag wins over environment.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Dir: cfg.ConfigDir})

	store := token.NewStore(cfg.ConfigDir)
	st := session.New()
	engine := auth.NewEngine(cfg.APIURL, store, st)

	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: auth.NewTransport(engine, store),
	}

	return &app{
		cfg:     cfg,
		store:   store,
		session: st,
		engine:  engine,
		client:  api.New(cfg.APIURL, httpClient),
	}, nil
}

// errorMessage renders an error for the terminal, preferring the backend's
// field-level detail when the error carries one.
func errorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
