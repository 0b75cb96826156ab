package webex

// Functional options applied by New. Options must be deterministic and
// side-effect free.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction.
type Option func(*Client) error

// WithBaseURL overrides the primary API root. Useful for tests and proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.api.SetBaseURL(u)
		return nil
	}
}

// WithAnalyticsBaseURL overrides the analytics root used for CDR retrieval.
func WithAnalyticsBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("analytics base URL cannot be empty")
		}
		c.analytics.SetBaseURL(u)
		return nil
	}
}

// WithHTTPTimeout bounds the total time spent on a single upstream request.
// Applies to both the primary and the analytics client.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.api.SetTimeout(d)
		c.analytics.SetTimeout(d)
		return nil
	}
}

// WithZeroMillisWorkaround toggles the substitution of .001 for an all-zero
// millisecond field in CDR window timestamps. The analytics endpoint has
// been observed to reject .000 on some inputs; disable this once the
// upstream accepts it.
func WithZeroMillisWorkaround(enabled bool) Option {
	return func(c *Client) error {
		c.zeroMillisFix = enabled
		return nil
	}
}

// WithDebug enables wire-level request/response logging on both clients.
// Not for production use.
func WithDebug(enabled bool) Option {
	return func(c *Client) error {
		c.api.SetDebug(enabled)
		c.analytics.SetDebug(enabled)
		return nil
	}
}
