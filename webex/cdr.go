package webex

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// cdrFeedPath is the detailed call history feed on the analytics root.
const cdrFeedPath = "/cdr_feed"

// CDRRecord is one call detail record as returned by the feed. Field names
// are not stable across upstream API revisions ("Duration" vs "duration",
// "Call type" vs "callType"), so records stay opaque and logical fields are
// probed through fallback key lists.
type CDRRecord map[string]any

// CDRQuery describes a call detail record request.
//
// StartTime and EndTime accept any timestamp shape ParseTimestamp handles;
// they are canonicalized to millisecond ISO-8601 before hitting the wire.
// PersonID is filtered client-side: the feed has no server-side person
// filter.
type CDRQuery struct {
	StartTime  string
	EndTime    string
	PersonID   string
	LocationID string
	MaxResults int
}

// cdrVariant is one hypothesis about the parameter set the feed accepts.
type cdrVariant struct {
	name   string
	params map[string]string
}

// buildCDRVariants returns candidate parameter sets in priority order:
//
//  1. minimal: startTime/endTime only, since narrow sets fail least
//     often against strict upstream validation;
//  2. full: location filter and max included;
//  3. full without max;
//  4. full without the location filter.
//
// Every variant uses millisecond ISO-8601: the feed's contract requires
// millisecond precision, so variant diversity is about optional fields, not
// timestamp format.
func buildCDRVariants(start, end, locationID string, max int) []cdrVariant {
	base := func() map[string]string {
		return map[string]string{"startTime": start, "endTime": end}
	}

	full := base()
	if locationID != "" {
		full["locations"] = locationID
	}
	full["max"] = strconv.Itoa(max)

	noMax := base()
	if locationID != "" {
		noMax["locations"] = locationID
	}

	noLocation := base()
	noLocation["max"] = strconv.Itoa(max)

	return []cdrVariant{
		{name: "minimal", params: base()},
		{name: "full", params: full},
		{name: "no_max", params: noMax},
		{name: "no_location", params: noLocation},
	}
}

// GetCallDetailRecords retrieves CDRs for the window from the analytics
// feed, trying each request variant in order until one succeeds. Only a 400
// that signals a malformed parameter shape advances to the next variant;
// every other failure propagates immediately.
func (c *Client) GetCallDetailRecords(ctx context.Context, q CDRQuery) ([]CDRRecord, error) {
	if strings.TrimSpace(q.StartTime) == "" || strings.TrimSpace(q.EndTime) == "" {
		return nil, ErrMissingWindow
	}
	if q.MaxResults <= 0 {
		q.MaxResults = DefaultMaxResults
	}

	start := CanonicalizeTimestamp(q.StartTime, EncodingISOMillis, c.zeroMillisFix)
	end := CanonicalizeTimestamp(q.EndTime, EncodingISOMillis, c.zeroMillisFix)

	var lastErr error
	attempted := make(map[string]bool)
	for _, v := range buildCDRVariants(start, end, q.LocationID, q.MaxResults) {
		key := encodeParams(v.params)
		if attempted[key] {
			// Empty optional fields collapse variants into identical
			// parameter sets; hit the upstream once per distinct set.
			continue
		}
		attempted[key] = true
		cdrVariantAttempts.WithLabelValues(v.name).Inc()

		req := c.analytics.R().SetContext(ctx).SetQueryParams(v.params)
		resp, err := req.Get(cdrFeedPath)
		observeRequest(cdrFeedPath, resp, err)
		if err != nil {
			return nil, fmt.Errorf("webex: GET %s: %w", cdrFeedPath, err)
		}
		if resp.IsError() {
			ae := newAPIError(cdrFeedPath, resp.StatusCode(), resp.Body())
			if !ae.Retryable() {
				return nil, ae
			}
			lastErr = ae
			continue
		}

		records := normalizeCDRBody(resp.Body())
		if q.PersonID != "" {
			records = filterByPerson(records, q.PersonID)
		}
		return records, nil
	}

	cdrExhaustedTotal.Inc()
	return nil, c.exhaustionError(q, lastErr)
}

// exhaustionError wraps the last upstream rejection with window-eligibility
// diagnostics where the requested bounds can be parsed.
func (c *Client) exhaustionError(q CDRQuery, lastErr error) error {
	msg := "webex: all CDR request variants were rejected by the analytics feed"
	if startT, ok := ParseTimestamp(q.StartTime); ok {
		if endT, ok2 := ParseTimestamp(q.EndTime); ok2 {
			w := TimeWindow{Start: startT, End: endT}
			if violations := w.Diagnose(c.now()); len(violations) > 0 {
				msg += "; requested window is outside the accepted range: " +
					strings.Join(violations, "; ")
			}
		}
	}
	if lastErr != nil {
		return fmt.Errorf("%s: %w", msg, lastErr)
	}
	return fmt.Errorf("%s", msg)
}

func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
		b.WriteByte('&')
	}
	return b.String()
}

// listWrapperKeys are the envelope keys observed across feed revisions.
var listWrapperKeys = []string{"items", "data", "calls", "cdr"}

// normalizeCDRBody flattens the feed's heterogeneous response shapes into a
// list of records: a raw array, an array wrapped under a known key, or a
// bare single record. Anything else normalizes to an empty list.
func normalizeCDRBody(body []byte) []CDRRecord {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case []any:
		return toRecords(v)
	case map[string]any:
		for _, key := range listWrapperKeys {
			if inner, ok := v[key].([]any); ok {
				return toRecords(inner)
			}
		}
		// A mapping with no known list key is treated as one record.
		return []CDRRecord{CDRRecord(v)}
	default:
		return nil
	}
}

func toRecords(items []any) []CDRRecord {
	records := make([]CDRRecord, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, CDRRecord(m))
		}
	}
	return records
}

// Fallback key spellings for the person identifier, top-level and nested.
var (
	personKeys       = []string{"personId", "userId", "User UUID", "user_uuid"}
	fromKeys         = []string{"from", "caller", "fromNumber"}
	toKeys           = []string{"to", "called", "toNumber"}
	nestedPersonKeys = []string{"personId", "userId", "id"}
)

// filterByPerson keeps records whose from-person, to-person, or top-level
// person field equals personID. The feed has no server-side person filter,
// so this always runs after normalization.
func filterByPerson(records []CDRRecord, personID string) []CDRRecord {
	var kept []CDRRecord
	for _, rec := range records {
		if recordMatchesPerson(rec, personID) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func recordMatchesPerson(rec CDRRecord, personID string) bool {
	if probeString(rec, personKeys...) == personID {
		return true
	}
	for _, keys := range [][]string{fromKeys, toKeys} {
		for _, key := range keys {
			if nested, ok := rec[key].(map[string]any); ok {
				if probeString(nested, nestedPersonKeys...) == personID {
					return true
				}
			}
		}
	}
	return false
}

// probeString returns the first non-empty string value found under the
// candidate keys.
func probeString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
