// ABOUTME: Tests for configuration loading
// ABOUTME: Covers defaults, environment overrides, and the config dir fallback

package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MILHAS_API_URL", "")
	t.Setenv("MILHAS_CONFIG_DIR", "")
	t.Setenv("MILHAS_LOG_LEVEL", "")
	t.Setenv("MILHAS_HTTP_TIMEOUT", "")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000/api", cfg.APIURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.NotEmpty(t, cfg.ConfigDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MILHAS_API_URL", "https://wallet.example.com/api")
	t.Setenv("MILHAS_CONFIG_DIR", "/tmp/milhas-test")
	t.Setenv("MILHAS_LOG_LEVEL", "debug")
	t.Setenv("MILHAS_HTTP_TIMEOUT", "5s")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://wallet.example.com/api", cfg.APIURL)
	assert.Equal(t, "/tmp/milhas-test", cfg.ConfigDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, filepath.Join("/tmp/xdg", "milhas"), DefaultConfigDir())
}
