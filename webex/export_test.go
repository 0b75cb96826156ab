package webex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExportCallRecordsCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
			{"Duration":60,"Call type":"SIP_PSTN","personId":"p1"},
			{"Duration":30,"Answered":"true"}
		]}`)
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	out, err := c.ExportCallRecords(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
	}, "csv")
	if err != nil {
		t.Fatalf("ExportCallRecords: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	// Header is the sorted union of all field names.
	if lines[0] != "Answered,Call type,Duration,personId" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "60") || !strings.Contains(lines[1], "p1") {
		t.Fatalf("row 1 wrong: %s", lines[1])
	}
}

func TestExportCallRecordsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"Duration":60}]`)
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	out, err := c.ExportCallRecords(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
	}, "json")
	if err != nil {
		t.Fatalf("ExportCallRecords: %v", err)
	}
	if !strings.Contains(out, `"Duration": 60`) {
		t.Fatalf("unexpected JSON export: %s", out)
	}
}

func TestExportCallRecordsUnknownFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	_, err := c.ExportCallRecords(context.Background(), CDRQuery{
		StartTime: "2024-01-15T00:00:00Z",
		EndTime:   "2024-01-15T12:00:00Z",
	}, "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported export format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestFieldToString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{float64(60), "60"},
		{float64(1.5), "1.5"},
		{map[string]any{"a": float64(1)}, `{"a":1}`},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := fieldToString(tc.in); got != tc.want {
			t.Errorf("fieldToString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
