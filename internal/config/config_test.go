package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("WEBEX_ACCESS_TOKEN", "tok")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "https://webexapis.com/v1", cfg.BaseURL)
	assert.Equal(t, "https://analytics.webexapis.com/v1", cfg.AnalyticsBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.ZeroMillisWorkaround, "zero-millis workaround must default on")
	assert.Equal(t, 11545, cfg.HTTPPort)
	assert.NoError(t, cfg.Validate())
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv("WEBEX_ACCESS_TOKEN", "tok")
	t.Setenv("WEBEX_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("WEBEX_HTTP_TIMEOUT", "5s")
	t.Setenv("WEBEX_ZERO_MILLIS_WORKAROUND", "false")
	t.Setenv("WEBEX_HTTP_PORT", "8123")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.ZeroMillisWorkaround)
	assert.Equal(t, 8123, cfg.HTTPPort)
}

func TestValidateMissingToken(t *testing.T) {
	cfg := NewForTesting()
	cfg.AccessToken = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEBEX_ACCESS_TOKEN", "error must name the variable")
}

func TestValidateBadPort(t *testing.T) {
	cfg := NewForTesting()

	cfg.HTTPPort = 70000
	assert.Error(t, cfg.Validate())

	cfg.HTTPPort = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateBadTimeout(t *testing.T) {
	cfg := NewForTesting()
	cfg.HTTPTimeout = 0
	assert.Error(t, cfg.Validate())
}
