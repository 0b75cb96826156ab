package webex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// newCDRTestClient points both roots at the stub server.
func newCDRTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New("test-token",
		WithBaseURL(srv.URL),
		WithAnalyticsBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestGetCallDetailRecordsMissingWindow(t *testing.T) {
	c, err := New("test-token")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.GetCallDetailRecords(context.Background(), CDRQuery{StartTime: "2024-01-15T00:00:00Z"})
	if !errors.Is(err, ErrMissingWindow) {
		t.Fatalf("expected ErrMissingWindow, got %v", err)
	}
	_, err = c.GetCallDetailRecords(context.Background(), CDRQuery{EndTime: "2024-01-15T00:00:00Z"})
	if !errors.Is(err, ErrMissingWindow) {
		t.Fatalf("expected ErrMissingWindow, got %v", err)
	}
}

func TestGetCallDetailRecordsFirstVariantSucceeds(t *testing.T) {
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)
		w.Write([]byte(`{"items":[{"Duration":60},{"Duration":30}]}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	records, err := c.GetCallDetailRecords(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
	})
	if err != nil {
		t.Fatalf("GetCallDetailRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if len(requests) != 1 {
		t.Fatalf("expected a single upstream request, got %d", len(requests))
	}
	// The canonicalized millisecond timestamps go over the wire.
	if !strings.Contains(requests[0], "00%3A00%3A00.001Z") {
		t.Errorf("startTime not canonicalized: %s", requests[0])
	}
}

func TestGetCallDetailRecordsLeavesBaseURLAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"denied"}`))
	}))
	defer srv.Close()

	const apiRoot = "https://api.example.test/v1"
	c, err := New("test-token",
		WithBaseURL(apiRoot),
		WithAnalyticsBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	query := CDRQuery{StartTime: "2024-01-15T00:00:00Z", EndTime: "2024-01-15T12:00:00Z"}
	if _, err := c.GetCallDetailRecords(context.Background(), query); err == nil {
		t.Fatal("expected upstream error")
	}
	// Analytics traffic goes over its own client; the primary root is
	// untouched whether the fetch succeeds or fails.
	if c.BaseURL() != apiRoot {
		t.Errorf("primary base URL changed: %s", c.BaseURL())
	}
	if c.AnalyticsBaseURL() != srv.URL {
		t.Errorf("analytics base URL changed: %s", c.AnalyticsBaseURL())
	}
}

func TestGetCallDetailRecordsRetriesThroughVariants(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 4 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Invalid startTime format","trackingId":"tr-1"}`))
			return
		}
		w.Write([]byte(`[{"Duration":10}]`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	records, err := c.GetCallDetailRecords(context.Background(), CDRQuery{
		StartTime:  "2024-01-15T00:00:00Z",
		EndTime:    "2024-01-15T12:00:00Z",
		LocationID: "loc-1",
	})
	if err != nil {
		t.Fatalf("GetCallDetailRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	// With a location set all four variants are distinct; the last one
	// succeeds and nothing is attempted after it.
	if hits != 4 {
		t.Fatalf("expected 4 attempts, got %d", hits)
	}
}

func TestGetCallDetailRecordsNonRetryableStops(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"User does not have the required role","trackingId":"tr-403"}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	_, err := c.GetCallDetailRecords(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if hits != 1 {
		t.Fatalf("403 must not advance variants; got %d attempts", hits)
	}
	if !IsStatus(err, http.StatusForbidden) {
		t.Fatalf("expected 403 APIError, got %v", err)
	}
	if !strings.Contains(err.Error(), "Detailed Call History") {
		t.Errorf("403 should carry the role hint: %v", err)
	}
}

func TestGetCallDetailRecordsExhaustionDiagnostics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid request parameters"}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	// Pin now so the 72-hour-old window is deterministically stale.
	now := time.Date(2024, 1, 18, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, err := c.GetCallDetailRecords(context.Background(), CDRQuery{
		StartTime:  "2024-01-15T00:00:00Z",
		EndTime:    "2024-01-15T12:00:00Z",
		LocationID: "loc-1",
	})
	if err == nil {
		t.Fatal("expected exhaustion error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "all CDR request variants were rejected") {
		t.Errorf("missing exhaustion summary: %s", msg)
	}
	if !strings.Contains(msg, "more than 48 hours") {
		t.Errorf("missing window diagnostics: %s", msg)
	}
	// The last upstream rejection stays inspectable.
	if !IsStatus(err, http.StatusBadRequest) {
		t.Errorf("wrapped APIError lost: %v", err)
	}
}

func TestGetCallDetailRecordsDeduplicatesVariants(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid request"}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	_, err := c.GetCallDetailRecords(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
		// No location: full and no_location collapse to the same params.
	})
	if err == nil {
		t.Fatal("expected error")
	}
	// minimal == no_max and full == no_location when the location is empty.
	if hits != 2 {
		t.Fatalf("expected 2 distinct parameter sets without a location, got %d", hits)
	}
}

func TestGetCallDetailRecordsTransportErrorAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := newCDRTestClient(t, srv)
	_, err := c.GetCallDetailRecords(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
	})
	if err == nil {
		t.Fatal("expected transport error")
	}
	var ae *APIError
	if errors.As(err, &ae) {
		t.Fatalf("transport failure must not be an APIError: %v", err)
	}
}

func TestNormalizeCDRBodyShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"raw list", `[{"a":1},{"b":2}]`, 2},
		{"items wrapper", `{"items":[{"a":1}]}`, 1},
		{"data wrapper", `{"data":[{"a":1},{"b":2},{"c":3}]}`, 3},
		{"calls wrapper", `{"calls":[{"a":1}]}`, 1},
		{"cdr wrapper", `{"cdr":[{"a":1}]}`, 1},
		{"single record", `{"Duration":60,"Call type":"SIP_NATIONAL"}`, 1},
		{"empty list", `[]`, 0},
		{"scalar", `42`, 0},
		{"invalid json", `{nope`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeCDRBody([]byte(tc.body))
			if len(got) != tc.want {
				t.Fatalf("got %d records, want %d", len(got), tc.want)
			}
		})
	}
}

func TestFilterByPerson(t *testing.T) {
	records := []CDRRecord{
		{"personId": "p1", "Duration": float64(10)},
		{"userId": "p1"},
		{"User UUID": "p1"},
		{"from": map[string]any{"personId": "p1"}},
		{"to": map[string]any{"id": "p1"}},
		{"caller": map[string]any{"userId": "p1"}},
		{"personId": "p2"},
		{"from": map[string]any{"personId": "p2"}},
		{"Duration": float64(5)},
	}
	kept := filterByPerson(records, "p1")
	if len(kept) != 6 {
		t.Fatalf("expected 6 matches, got %d", len(kept))
	}
	if kept := filterByPerson(records, "p3"); len(kept) != 0 {
		t.Fatalf("expected no matches for unknown person, got %d", len(kept))
	}
}

func TestGetCallDetailRecordsPersonFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"personId":"p1","Duration":30},
			{"personId":"p2","Duration":40},
			{"from":{"personId":"p1"},"Duration":50}
		]}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	records, err := c.GetCallDetailRecords(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
		PersonID:  "p1",
	})
	if err != nil {
		t.Fatalf("GetCallDetailRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records after person filter, got %d", len(records))
	}
}

func TestBuildCDRVariantsOrder(t *testing.T) {
	variants := buildCDRVariants("S", "E", "loc-1", 500)
	wantNames := []string{"minimal", "full", "no_max", "no_location"}
	if len(variants) != len(wantNames) {
		t.Fatalf("got %d variants", len(variants))
	}
	for i, name := range wantNames {
		if variants[i].name != name {
			t.Errorf("variant %d = %s, want %s", i, variants[i].name, name)
		}
	}
	if len(variants[0].params) != 2 {
		t.Errorf("minimal must carry only the window, got %v", variants[0].params)
	}
	full := variants[1].params
	if full["locations"] != "loc-1" || full["max"] != "500" {
		t.Errorf("full params wrong: %v", full)
	}
	if _, ok := variants[2].params["max"]; ok {
		t.Error("no_max must omit max")
	}
	if _, ok := variants[3].params["locations"]; ok {
		t.Error("no_location must omit locations")
	}
}
