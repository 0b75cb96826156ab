package webex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewRequiresToken(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New("tok")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("base URL: %s", c.BaseURL())
	}
	if c.AnalyticsBaseURL() != DefaultAnalyticsBaseURL {
		t.Fatalf("analytics URL: %s", c.AnalyticsBaseURL())
	}
	if !c.zeroMillisFix {
		t.Fatal("zero-millis workaround must default on")
	}
}

func TestOptionValidation(t *testing.T) {
	if _, err := New("tok", WithBaseURL("")); err == nil {
		t.Fatal("empty base URL must fail")
	}
	if _, err := New("tok", WithAnalyticsBaseURL("")); err == nil {
		t.Fatal("empty analytics URL must fail")
	}
	if _, err := New("tok", WithHTTPTimeout(0)); err == nil {
		t.Fatal("zero timeout must fail")
	}
	c, err := New("tok", WithZeroMillisWorkaround(false), WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.zeroMillisFix {
		t.Fatal("workaround should be disabled")
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"displayName":"Test Org"}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	if _, err := c.GetMyInfo(context.Background()); err != nil {
		t.Fatalf("GetMyInfo: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("Authorization header: %q", gotAuth)
	}
}

func TestClientMapsErrorResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Person not found","trackingId":"tr-404"}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	_, err := c.GetUserDetails(context.Background(), "nobody")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404 APIError, got %v", err)
	}
}

func TestListItemsUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"a"},{"id":"b"}]}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	users, err := c.ListUsers(context.Background(), "", "", 0)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 items, got %d", len(users))
	}
}

func TestDoRespectsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.GetMyInfo(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestMaxParam(t *testing.T) {
	if maxParam(0) != "100" || maxParam(-5) != "100" {
		t.Fatal("default must be 100")
	}
	if maxParam(25) != "25" {
		t.Fatal("explicit max must pass through")
	}
}
