package webex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAggregatePSTNByCallType(t *testing.T) {
	records := []CDRRecord{
		{"Call type": "SIP_NATIONAL PSTN", "Duration": float64(90)},
		{"callType": "TRUNK", "Duration": float64(30)},
		{"Call type": "SIP_ENTERPRISE", "Duration": float64(600)},
		// Call type wins over the line-ID shape.
		{"Call type": "SIP_ENTERPRISE", "Called line ID": "+19195551234", "Duration": float64(60)},
	}
	s := AggregatePSTN(records)
	if s.TotalCalls != 2 {
		t.Fatalf("expected 2 PSTN calls, got %d", s.TotalCalls)
	}
	if s.TotalSeconds != 120 {
		t.Fatalf("expected 120 seconds, got %d", s.TotalSeconds)
	}
	if s.TotalMinutes != 2.0 {
		t.Fatalf("expected 2.0 minutes, got %v", s.TotalMinutes)
	}
}

func TestAggregatePSTNLineIDFallback(t *testing.T) {
	records := []CDRRecord{
		// No call type; external E.164 callee.
		{"Calling line ID": "1001", "Called line ID": "+19195551234", "Duration": float64(60)},
		// Internal extension to extension.
		{"Calling line ID": "1001", "Called line ID": "1002", "Duration": float64(60)},
		// Placeholder line IDs never classify as PSTN.
		{"Calling line ID": "NA", "Called line ID": "+19195551234", "Duration": float64(60)},
		{"Calling line ID": "anonymous", "Called line ID": "+19195551234", "Duration": float64(60)},
	}
	s := AggregatePSTN(records)
	if s.TotalCalls != 1 {
		t.Fatalf("expected 1 PSTN call, got %d", s.TotalCalls)
	}
}

func TestAggregatePSTNExcludesZeroDuration(t *testing.T) {
	records := []CDRRecord{
		{"Call type": "PSTN", "Duration": float64(0)},
		{"Call type": "PSTN"},
		{"Call type": "PSTN", "Duration": "45"},
	}
	s := AggregatePSTN(records)
	if s.TotalCalls != 1 {
		t.Fatalf("zero-duration records must be excluded; got %d calls", s.TotalCalls)
	}
	if s.TotalSeconds != 45 {
		t.Fatalf("string duration not parsed; got %d", s.TotalSeconds)
	}
}

func TestAggregatePSTNMinuteRounding(t *testing.T) {
	records := []CDRRecord{
		{"Call type": "PSTN", "Duration": float64(100)},
	}
	s := AggregatePSTN(records)
	// 100/60 = 1.6666..., rounded to 2 decimals.
	if s.TotalMinutes != 1.67 {
		t.Fatalf("expected 1.67 minutes, got %v", s.TotalMinutes)
	}
}

func TestAggregatePSTNSampleCap(t *testing.T) {
	records := make([]CDRRecord, 150)
	for i := range records {
		records[i] = CDRRecord{"Call type": "PSTN", "Duration": float64(60), "n": float64(i)}
	}
	s := AggregatePSTN(records)
	if s.TotalCalls != 150 {
		t.Fatalf("totals must cover every record, got %d", s.TotalCalls)
	}
	if len(s.SampleRecords) != pstnSampleCap {
		t.Fatalf("sample must cap at %d, got %d", pstnSampleCap, len(s.SampleRecords))
	}
}

func TestAggregatePSTNEmpty(t *testing.T) {
	s := AggregatePSTN(nil)
	if s.TotalCalls != 0 || s.TotalSeconds != 0 || s.TotalMinutes != 0 {
		t.Fatalf("empty input must zero out: %+v", s)
	}
	if s.SampleRecords == nil {
		t.Fatal("sample slice must be non-nil for JSON rendering")
	}
}

func TestGetPSTNMinutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
			{"Call type":"SIP_PSTN","Duration":120},
			{"Call type":"SIP_ENTERPRISE","Duration":300}
		]}`)
	}))
	defer srv.Close()

	c := newCDRTestClient(t, srv)
	s, err := c.GetPSTNMinutes(context.Background(), CDRQuery{
		StartTime:  "2024-01-15T00:00:00Z",
		EndTime:    "2024-01-15T12:00:00Z",
		LocationID: "loc-1",
	})
	if err != nil {
		t.Fatalf("GetPSTNMinutes: %v", err)
	}
	if s.TotalCalls != 1 || s.TotalSeconds != 120 || s.TotalMinutes != 2.0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.LocationID != "loc-1" || s.StartTime == "" {
		t.Fatalf("query echo missing: %+v", s)
	}
}
