package webex

import (
	"context"
	"strings"
)

// Derived analytics computed client-side from the CDR feed. The upstream
// exposes no aggregate reporting endpoint at this API level.

// CallAnalytics summarizes call volume over a window.
type CallAnalytics struct {
	StartTime      string         `json:"startTime"`
	EndTime        string         `json:"endTime"`
	LocationID     string         `json:"locationId,omitempty"`
	TotalCalls     int            `json:"totalCalls"`
	AnsweredCalls  int            `json:"answeredCalls"`
	TotalSeconds   int            `json:"totalSeconds"`
	AverageSeconds float64        `json:"averageSeconds"`
	ByDirection    map[string]int `json:"byDirection"`
	ByCallType     map[string]int `json:"byCallType"`
}

var directionKeys = []string{"Direction", "direction"}

// GetCallAnalytics fetches CDRs for the window and rolls them up by
// direction and call type.
func (c *Client) GetCallAnalytics(ctx context.Context, q CDRQuery) (*CallAnalytics, error) {
	records, err := c.GetCallDetailRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	a := &CallAnalytics{
		StartTime:   q.StartTime,
		EndTime:     q.EndTime,
		LocationID:  q.LocationID,
		ByDirection: map[string]int{},
		ByCallType:  map[string]int{},
	}
	for _, rec := range records {
		a.TotalCalls++
		dur := recordDuration(rec)
		a.TotalSeconds += dur
		if dur > 0 {
			a.AnsweredCalls++
		}
		if dir := strings.ToUpper(probeString(rec, directionKeys...)); dir != "" {
			a.ByDirection[dir]++
		}
		if ct := strings.ToUpper(probeString(rec, callTypeKeys...)); ct != "" {
			a.ByCallType[ct]++
		}
	}
	if a.TotalCalls > 0 {
		a.AverageSeconds = float64(a.TotalSeconds) / float64(a.TotalCalls)
	}
	return a, nil
}

// UserCallStatistics summarizes one user's calls over a window.
type UserCallStatistics struct {
	PersonID      string  `json:"personId"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	TotalCalls    int     `json:"totalCalls"`
	InboundCalls  int     `json:"inboundCalls"`
	OutboundCalls int     `json:"outboundCalls"`
	TotalSeconds  int     `json:"totalSeconds"`
	TotalMinutes  float64 `json:"totalMinutes"`
}

// GetUserCallStatistics fetches CDRs filtered to the given person and
// totals them by direction.
func (c *Client) GetUserCallStatistics(ctx context.Context, personID string, q CDRQuery) (*UserCallStatistics, error) {
	q.PersonID = personID
	records, err := c.GetCallDetailRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	s := &UserCallStatistics{PersonID: personID, StartTime: q.StartTime, EndTime: q.EndTime}
	for _, rec := range records {
		s.TotalCalls++
		s.TotalSeconds += recordDuration(rec)
		// The feed reports ORIGINATING (placed) and TERMINATING (received);
		// some revisions use IN/OUT or INBOUND/OUTBOUND instead.
		switch dir := strings.ToUpper(probeString(rec, directionKeys...)); {
		case dir == "TERMINATING" || strings.HasPrefix(dir, "IN"):
			s.InboundCalls++
		case dir == "ORIGINATING" || strings.HasPrefix(dir, "OUT"):
			s.OutboundCalls++
		}
	}
	s.TotalMinutes = float64(s.TotalSeconds) / 60
	return s, nil
}
