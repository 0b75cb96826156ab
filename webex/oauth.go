package webex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// OAuth endpoints and the admin scopes the bridge needs.
const (
	authorizeURL = "https://webexapis.com/v1/authorize"
	tokenURL     = "https://webexapis.com/v1/access_token"

	// DefaultOAuthScope covers people, locations, organizations, telephony
	// configuration, and detailed call history.
	DefaultOAuthScope = "spark:people_read spark-admin:locations_read spark-admin:organizations_read spark-admin:telephony_config_read spark-admin:read_call_history"
)

// OAuthConfig holds the authorization-code flow settings.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scope        string
}

// TokenResponse is the token endpoint's reply.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// OAuthFlow drives the browser-based authorization-code grant, receiving
// the callback on a local HTTP server.
type OAuthFlow struct {
	cfg  OAuthConfig
	http *http.Client

	// tokenEndpoint is overridden in tests.
	tokenEndpoint string
}

// NewOAuthFlow validates cfg and applies defaults.
func NewOAuthFlow(cfg OAuthConfig) (*OAuthFlow, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("webex: oauth client id and secret are required")
	}
	if cfg.RedirectURI == "" {
		cfg.RedirectURI = "http://localhost:8080/callback"
	}
	if cfg.Scope == "" {
		cfg.Scope = DefaultOAuthScope
	}
	return &OAuthFlow{
		cfg:           cfg,
		http:          &http.Client{Timeout: defaultHTTPTimeout},
		tokenEndpoint: tokenURL,
	}, nil
}

// AuthorizationURL builds the consent URL. A fresh state value is returned
// alongside and must match the callback.
func (f *OAuthFlow) AuthorizationURL() (authURL, state string) {
	state = uuid.NewString()
	params := url.Values{
		"client_id":     {f.cfg.ClientID},
		"response_type": {"code"},
		"redirect_uri":  {f.cfg.RedirectURI},
		"scope":         {f.cfg.Scope},
		"state":         {state},
	}
	return authorizeURL + "?" + params.Encode(), state
}

// callbackResult carries the outcome of the local callback.
type callbackResult struct {
	code string
	err  error
}

// WaitForCallback serves the redirect URI until the provider delivers a
// code (or error), then shuts the listener down. The expected state value
// guards against cross-site injection of a foreign code.
func (f *OAuthFlow) WaitForCallback(ctx context.Context, state string) (string, error) {
	redirect, err := url.Parse(f.cfg.RedirectURI)
	if err != nil {
		return "", fmt.Errorf("webex: parse redirect URI: %w", err)
	}

	results := make(chan callbackResult, 1)
	r := mux.NewRouter()
	r.HandleFunc(redirect.Path, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		switch {
		case q.Get("error") != "":
			http.Error(w, "Authorization failed: "+q.Get("error"), http.StatusBadRequest)
			results <- callbackResult{err: fmt.Errorf("webex: authorization denied: %s", q.Get("error"))}
		case q.Get("state") != state:
			http.Error(w, "State mismatch", http.StatusBadRequest)
			results <- callbackResult{err: errors.New("webex: oauth state mismatch")}
		case q.Get("code") == "":
			http.NotFound(w, req)
		default:
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body><h1>Authorization successful</h1><p>You can close this window.</p></body></html>"))
			results <- callbackResult{code: q.Get("code")}
		}
	}).Methods(http.MethodGet)

	ln, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return "", fmt.Errorf("webex: listen on %s: %w", redirect.Host, err)
	}
	srv := &http.Server{Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() { _ = srv.Serve(ln) }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	select {
	case res := <-results:
		return res.code, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ExchangeCode trades an authorization code for tokens.
func (f *OAuthFlow) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {f.cfg.ClientID},
		"client_secret": {f.cfg.ClientSecret},
		"code":          {code},
		"redirect_uri":  {f.cfg.RedirectURI},
	}
	return f.postToken(ctx, form)
}

// RefreshToken trades a refresh token for a fresh access token.
func (f *OAuthFlow) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {f.cfg.ClientID},
		"client_secret": {f.cfg.ClientSecret},
		"refresh_token": {refreshToken},
	}
	return f.postToken(ctx, form)
}

// postToken POSTs to the token endpoint, retrying transient transport
// failures with bounded exponential backoff. 4xx replies are permanent.
func (f *OAuthFlow) postToken(ctx context.Context, form url.Values) (*TokenResponse, error) {
	var token *TokenResponse
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.tokenEndpoint,
			strings.NewReader(form.Encode()))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := f.http.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("token endpoint returned %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("token endpoint returned %d", resp.StatusCode))
		}

		var tr TokenResponse
		if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
			return backoff.Permanent(err)
		}
		token = &tr
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, fmt.Errorf("webex: token exchange: %w", err)
	}
	return token, nil
}
