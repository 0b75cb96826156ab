package webex

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingWindow is returned when a CDR query lacks a start or end bound.
var ErrMissingWindow = errors.New("webex: both startTime and endTime are required")

// APIError is a non-2xx reply from a Webex endpoint.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	TrackingID string
	Hint       string
}

// apiErrorBody matches the Webex error envelope. Older revisions put the
// detail in message, newer ones in errors[].description.
type apiErrorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Description string `json:"description"`
	} `json:"errors"`
	TrackingID string `json:"trackingId"`
}

func newAPIError(endpoint string, status int, body []byte) *APIError {
	e := &APIError{
		Endpoint:   endpoint,
		StatusCode: status,
		Hint:       hintForStatus(status),
	}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		e.Message = parsed.Message
		e.TrackingID = parsed.TrackingID
		if e.Message == "" && len(parsed.Errors) > 0 {
			e.Message = parsed.Errors[0].Description
		}
	}
	if e.Message == "" {
		// Body was not the JSON envelope; keep a bounded slice of raw text.
		raw := strings.TrimSpace(string(body))
		if len(raw) > 200 {
			raw = raw[:200]
		}
		e.Message = raw
	}
	return e
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("webex: %s returned %d", e.Endpoint, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.TrackingID != "" {
		msg += " (trackingId " + e.TrackingID + ")"
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// Retryable reports whether the error is a 400 that indicates a malformed
// parameter shape, the one failure mode worth re-attempting with a different
// request variant. Auth, permission, not-found and rate-limit failures are
// terminal regardless of parameter encoding.
func (e *APIError) Retryable() bool {
	if e.StatusCode != http.StatusBadRequest {
		return false
	}
	m := strings.ToLower(e.Message)
	for _, tok := range []string{"invalid", "malformed", "unable to parse", "bad request"} {
		if strings.Contains(m, tok) {
			return true
		}
	}
	return false
}

func hintForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "check that the access token is valid, unexpired, and carries the required scopes"
	case http.StatusForbidden:
		return "the token lacks an admin role for this resource; detailed call history additionally requires the 'Webex Calling Detailed Call History API access' role"
	case http.StatusNotFound:
		return "the endpoint may not be available for this organization; verify Webex Calling is enabled"
	case http.StatusTooManyRequests:
		return "rate limited by the upstream API; retry after a pause"
	default:
		return ""
	}
}

// IsStatus reports whether err is an *APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == status
}
