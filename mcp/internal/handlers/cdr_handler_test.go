package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *webex.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := webex.New("test-token",
		webex.WithBaseURL(srv.URL),
		webex.WithAnalyticsBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("webex.New: %v", err)
	}
	return c
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty result content")
	}
	tc, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return tc.Text
}

func TestHandleGetCallDetailRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"personId":"p1","Duration":60}]}`))
	})
	h := NewCDRHandler(c)

	res, err := h.handleGetCallDetailRecords(context.Background(), callRequest("get_call_detail_records", map[string]any{
		"start_time": "2024-01-15T00:00:00Z",
		"end_time":   "2024-01-15T12:00:00Z",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"count": 1`) {
		t.Fatalf("unexpected payload: %s", text)
	}
}

func TestHandleGetCallDetailRecordsMissingWindow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no upstream call expected")
	})
	h := NewCDRHandler(c)

	res, err := h.handleGetCallDetailRecords(context.Background(), callRequest("get_call_detail_records", map[string]any{
		"start_time": "2024-01-15T00:00:00Z",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing end_time")
	}
}

func TestHandleGetCallDetailRecordsUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"role missing"}`))
	})
	h := NewCDRHandler(c)

	res, err := h.handleGetCallDetailRecords(context.Background(), callRequest("get_call_detail_records", map[string]any{
		"start_time": "2024-01-15T00:00:00Z",
		"end_time":   "2024-01-15T12:00:00Z",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	text := resultText(t, res)
	if !strings.Contains(text, "403") {
		t.Fatalf("status lost: %s", text)
	}
}

func TestHandleGetPSTNMinutes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"Call type":"SIP_PSTN","Duration":120},
			{"Call type":"SIP_ENTERPRISE","Duration":60}
		]}`))
	})
	h := NewCDRHandler(c)

	res, err := h.handleGetPSTNMinutes(context.Background(), callRequest("get_pstn_minutes", map[string]any{
		"start_time": "2024-01-15T00:00:00Z",
		"end_time":   "2024-01-15T12:00:00Z",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"totalPSTNMinutes": 2`) {
		t.Fatalf("unexpected payload: %s", text)
	}
	if !strings.Contains(text, `"totalPSTNCalls": 1`) {
		t.Fatalf("unexpected payload: %s", text)
	}
}

func TestHandleExportCallRecordsCSV(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"Duration":60,"personId":"p1"}]}`))
	})
	h := NewCDRHandler(c)

	res, err := h.handleExportCallRecords(context.Background(), callRequest("export_call_records", map[string]any{
		"start_time": "2024-01-15T00:00:00Z",
		"end_time":   "2024-01-15T12:00:00Z",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	text := resultText(t, res)
	if !strings.HasPrefix(text, "Duration,personId") {
		t.Fatalf("expected CSV header, got: %s", text)
	}
}

func TestHandleGetUserCallStatisticsRequiresPerson(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no upstream call expected")
	})
	h := NewCDRHandler(c)

	res, err := h.handleGetUserCallStatistics(context.Background(), callRequest("get_user_call_statistics", map[string]any{
		"start_time": "2024-01-15T00:00:00Z",
		"end_time":   "2024-01-15T12:00:00Z",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing person_id")
	}
}
