package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the bridge configuration.
// Environment variables are parsed from the WEBEX_ prefix.
type Config struct {
	// API access. AccessToken is required unless the OAuth login flow is
	// used to obtain one.
	AccessToken string `envconfig:"ACCESS_TOKEN" default:""`

	BaseURL          string `envconfig:"BASE_URL" default:"https://webexapis.com/v1"`
	AnalyticsBaseURL string `envconfig:"ANALYTICS_BASE_URL" default:"https://analytics.webexapis.com/v1"`

	// OAuth integration credentials for the login command.
	OAuthClientID     string `envconfig:"CLIENT_ID" default:""`
	OAuthClientSecret string `envconfig:"CLIENT_SECRET" default:""`
	OAuthRedirectURI  string `envconfig:"REDIRECT_URI" default:"http://localhost:8080/callback"`
	OAuthScope        string `envconfig:"SCOPE" default:""`

	// HTTP client behavior.
	HTTPTimeout          time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	ZeroMillisWorkaround bool          `envconfig:"ZERO_MILLIS_WORKAROUND" default:"true"`

	// MCP server identity and transport.
	ServerName    string `envconfig:"SERVER_NAME" default:"webex-calling-mcp"`
	ServerVersion string `envconfig:"SERVER_VERSION" default:"1.0.0"`
	HTTPPort      int    `envconfig:"HTTP_PORT" default:"11545"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.AccessToken == "" {
		return fmt.Errorf("WEBEX_ACCESS_TOKEN is required (run the login command to obtain one)")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("WEBEX_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("WEBEX_HTTP_PORT out of range: %d", c.HTTPPort)
	}
	return nil
}

// New parses configuration from WEBEX_-prefixed environment variables.
// Example: WEBEX_ACCESS_TOKEN, WEBEX_HTTP_PORT.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("WEBEX", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("analytics_base_url", cfg.AnalyticsBaseURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("zero_millis_workaround", cfg.ZeroMillisWorkaround).
		Int("http_port", cfg.HTTPPort).
		Bool("token_present", cfg.AccessToken != "").
		Msg("configuration loaded")

	return &cfg, nil
}

// NewForTesting returns a config suitable for unit tests.
func NewForTesting() *Config {
	return &Config{
		AccessToken:          "test-token",
		BaseURL:              "https://webexapis.com/v1",
		AnalyticsBaseURL:     "https://analytics.webexapis.com/v1",
		OAuthRedirectURI:     "http://localhost:8080/callback",
		HTTPTimeout:          30 * time.Second,
		ZeroMillisWorkaround: true,
		ServerName:           "webex-calling-mcp",
		ServerVersion:        "test",
		HTTPPort:             11545,
		LogLevel:             "debug",
	}
}
