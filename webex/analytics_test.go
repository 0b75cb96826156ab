package webex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetCallAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
			{"Direction":"ORIGINATING","Call type":"SIP_PSTN","Duration":60},
			{"Direction":"TERMINATING","Call type":"SIP_PSTN","Duration":120},
			{"Direction":"TERMINATING","Call type":"SIP_ENTERPRISE","Duration":0}
		]}`)
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	a, err := c.GetCallAnalytics(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
	})
	if err != nil {
		t.Fatalf("GetCallAnalytics: %v", err)
	}
	if a.TotalCalls != 3 {
		t.Fatalf("expected 3 calls, got %d", a.TotalCalls)
	}
	if a.AnsweredCalls != 2 {
		t.Fatalf("expected 2 answered calls, got %d", a.AnsweredCalls)
	}
	if a.TotalSeconds != 180 {
		t.Fatalf("expected 180 seconds, got %d", a.TotalSeconds)
	}
	if a.ByDirection["TERMINATING"] != 2 || a.ByDirection["ORIGINATING"] != 1 {
		t.Fatalf("direction rollup wrong: %v", a.ByDirection)
	}
	if a.ByCallType["SIP_PSTN"] != 2 {
		t.Fatalf("call type rollup wrong: %v", a.ByCallType)
	}
	if a.AverageSeconds != 60 {
		t.Fatalf("expected average 60, got %v", a.AverageSeconds)
	}
}

func TestGetUserCallStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
			{"personId":"p1","Direction":"ORIGINATING","Duration":60},
			{"personId":"p1","Direction":"TERMINATING","Duration":30},
			{"personId":"p1","Direction":"TERMINATING","Duration":30},
			{"personId":"p2","Direction":"ORIGINATING","Duration":600}
		]}`)
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	s, err := c.GetUserCallStatistics(context.Background(), "p1", CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
	})
	if err != nil {
		t.Fatalf("GetUserCallStatistics: %v", err)
	}
	if s.TotalCalls != 3 {
		t.Fatalf("person filter leaked: %d calls", s.TotalCalls)
	}
	if s.InboundCalls != 2 || s.OutboundCalls != 1 {
		t.Fatalf("direction split wrong: %+v", s)
	}
	if s.TotalSeconds != 120 || s.TotalMinutes != 2.0 {
		t.Fatalf("duration totals wrong: %+v", s)
	}
}
