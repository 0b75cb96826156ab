// Package webex is a client SDK for the Webex Calling management APIs.
//
// A Client talks to two upstream roots: the primary API
// (https://webexapis.com/v1) for organization, people, telephony
// configuration and webhooks, and the analytics root
// (https://analytics.webexapis.com/v1) for detailed call history. The
// analytics root is held as a separate HTTP client so fetching call detail
// records never mutates the primary client's base URL; concurrent calls on a
// shared Client are safe.
package webex

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the primary Webex API root.
	DefaultBaseURL = "https://webexapis.com/v1"
	// DefaultAnalyticsBaseURL hosts the detailed call history (CDR) feed.
	DefaultAnalyticsBaseURL = "https://analytics.webexapis.com/v1"

	defaultHTTPTimeout = 30 * time.Second

	// DefaultMaxResults is applied when a list call does not specify max.
	DefaultMaxResults = 100
)

// Client is a Webex Calling API client.
type Client struct {
	api       *resty.Client
	analytics *resty.Client

	// zeroMillisFix substitutes .001 for an all-zero millisecond field in
	// CDR timestamps. See FormatTimestamp.
	zeroMillisFix bool

	// now is stubbed in tests of window diagnostics.
	now func() time.Time
}

// New constructs a Client authenticated with the given access token.
func New(accessToken string, opts ...Option) (*Client, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("webex: access token cannot be empty")
	}

	c := &Client{
		api:           newRestyClient(DefaultBaseURL, accessToken),
		analytics:     newRestyClient(DefaultAnalyticsBaseURL, accessToken),
		zeroMillisFix: true,
		now:           time.Now,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newRestyClient(baseURL, token string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultHTTPTimeout)
}

// BaseURL returns the primary API root the client is configured with.
func (c *Client) BaseURL() string { return c.api.BaseURL }

// AnalyticsBaseURL returns the analytics root used for CDR retrieval.
func (c *Client) AnalyticsBaseURL() string { return c.analytics.BaseURL }

// get issues a GET against the primary API root and decodes the response
// into out (unless out is nil). Non-2xx responses become *APIError.
func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	return c.do(ctx, c.api, "GET", path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.api, "POST", path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.api, "PUT", path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, c.api, "DELETE", path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, rc *resty.Client, method, path string, query map[string]string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	observeRequest(path, resp, err)
	if err != nil {
		return fmt.Errorf("webex: %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return newAPIError(path, resp.StatusCode(), resp.Body())
	}
	if out == nil {
		return nil
	}
	if len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("webex: decode %s response: %w", path, err)
	}
	return nil
}

// itemsEnvelope is the standard Webex list wrapper.
type itemsEnvelope struct {
	Items []map[string]any `json:"items"`
}

// listItems GETs a list endpoint and unwraps the "items" envelope.
func (c *Client) listItems(ctx context.Context, path string, query map[string]string) ([]map[string]any, error) {
	var env itemsEnvelope
	if err := c.get(ctx, path, query, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// getMap GETs a single-object endpoint as a generic mapping. Upstream
// resource schemas drift between API revisions, so detail payloads are kept
// opaque and passed through to the caller.
func (c *Client) getMap(ctx context.Context, path string, query map[string]string) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func maxParam(max int) string {
	if max <= 0 {
		max = DefaultMaxResults
	}
	return strconv.Itoa(max)
}
