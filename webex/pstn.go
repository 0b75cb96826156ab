package webex

import (
	"context"
	"math"
	"strconv"
	"strings"
)

// pstnSampleCap bounds the records echoed back in a summary so tool replies
// stay a reasonable size.
const pstnSampleCap = 100

// PSTNSummary aggregates PSTN usage over a set of call detail records.
type PSTNSummary struct {
	PersonID      string      `json:"personId,omitempty"`
	LocationID    string      `json:"locationId,omitempty"`
	StartTime     string      `json:"startTime"`
	EndTime       string      `json:"endTime"`
	TotalMinutes  float64     `json:"totalPSTNMinutes"`
	TotalSeconds  int         `json:"totalPSTNSeconds"`
	TotalCalls    int         `json:"totalPSTNCalls"`
	SampleRecords []CDRRecord `json:"sampleRecords"`
}

// Fallback key spellings per logical field; the feed has shipped both
// report-style ("Call type") and camelCase ("callType") namings.
var (
	callTypeKeys = []string{"Call type", "callType", "call_type", "type"}
	durationKeys = []string{"Duration", "duration", "durationSeconds"}
	callingKeys  = []string{"Calling line ID", "callingLineId", "calling_line_id"}
	calledKeys   = []string{"Called line ID", "calledLineId", "called_line_id"}
)

// GetPSTNMinutes fetches CDRs for the window and reduces them to PSTN
// totals.
func (c *Client) GetPSTNMinutes(ctx context.Context, q CDRQuery) (*PSTNSummary, error) {
	records, err := c.GetCallDetailRecords(ctx, q)
	if err != nil {
		return nil, err
	}
	summary := AggregatePSTN(records)
	summary.PersonID = q.PersonID
	summary.LocationID = q.LocationID
	summary.StartTime = q.StartTime
	summary.EndTime = q.EndTime
	return summary, nil
}

// AggregatePSTN classifies each record as PSTN or internal and totals the
// durations of PSTN calls. Records with zero duration are unanswered or
// uncompleted and are excluded entirely.
func AggregatePSTN(records []CDRRecord) *PSTNSummary {
	summary := &PSTNSummary{SampleRecords: []CDRRecord{}}
	for _, rec := range records {
		dur := recordDuration(rec)
		if dur <= 0 {
			continue
		}
		if !isPSTNRecord(rec) {
			continue
		}
		summary.TotalCalls++
		summary.TotalSeconds += dur
		if len(summary.SampleRecords) < pstnSampleCap {
			summary.SampleRecords = append(summary.SampleRecords, rec)
		}
	}
	summary.TotalMinutes = math.Round(float64(summary.TotalSeconds)/60*100) / 100
	return summary
}

// isPSTNRecord decides whether a call left the internal calling system.
// Call-type text is authoritative when present; otherwise the calling/called
// line identifiers are inspected for an E.164-style external number.
func isPSTNRecord(rec CDRRecord) bool {
	callType := strings.ToUpper(probeString(rec, callTypeKeys...))
	if callType != "" {
		if strings.Contains(callType, "PSTN") || strings.Contains(callType, "TRUNK") {
			return true
		}
		if strings.Contains(callType, "ENTERPRISE") {
			return false
		}
	}

	calling := probeString(rec, callingKeys...)
	called := probeString(rec, calledKeys...)
	if isPlaceholderLineID(calling) || isPlaceholderLineID(called) {
		return false
	}
	return strings.HasPrefix(calling, "+") || strings.HasPrefix(called, "+")
}

func isPlaceholderLineID(id string) bool {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "", "NA", "N/A", "UNAVAILABLE", "ANONYMOUS", "UNKNOWN":
		return true
	}
	return false
}

// recordDuration probes the duration field, which arrives as a JSON number
// or as a numeric string depending on feed revision.
func recordDuration(rec CDRRecord) int {
	for _, key := range durationKeys {
		switch v := rec[key].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return 0
}
