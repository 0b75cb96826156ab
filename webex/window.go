package webex

import (
	"fmt"
	"time"
)

// The analytics feed only serves records for bounds between five minutes
// and 48 hours in the past. Asserted from upstream rejections rather than
// documentation; treat as advisory.
const (
	cdrMinAge = 5 * time.Minute
	cdrMaxAge = 48 * time.Hour
)

// TimeWindow is a half-open request window with start <= end.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Diagnose returns human-readable descriptions of every way the window
// violates the feed's known eligibility constraints, relative to now. An
// empty slice means no known violation. The diagnostics are advisory: they
// annotate an exhaustion failure but never gate a request, because the
// upstream's own validation is authoritative.
func (w TimeWindow) Diagnose(now time.Time) []string {
	var violations []string

	oldest := now.Add(-cdrMaxAge)
	newest := now.Add(-cdrMinAge)

	if w.Start.Before(oldest) {
		violations = append(violations, fmt.Sprintf(
			"startTime %s is more than 48 hours in the past (oldest accepted: %s)",
			w.Start.UTC().Format(time.RFC3339), oldest.UTC().Format(time.RFC3339)))
	}
	if w.Start.After(newest) {
		violations = append(violations, fmt.Sprintf(
			"startTime %s is less than 5 minutes in the past (newest accepted: %s)",
			w.Start.UTC().Format(time.RFC3339), newest.UTC().Format(time.RFC3339)))
	}
	if w.End.Before(oldest) {
		violations = append(violations, fmt.Sprintf(
			"endTime %s is more than 48 hours in the past (oldest accepted: %s)",
			w.End.UTC().Format(time.RFC3339), oldest.UTC().Format(time.RFC3339)))
	}
	if w.End.After(newest) {
		violations = append(violations, fmt.Sprintf(
			"endTime %s is less than 5 minutes in the past (newest accepted: %s)",
			w.End.UTC().Format(time.RFC3339), newest.UTC().Format(time.RFC3339)))
	}
	if w.Start.After(w.End) {
		violations = append(violations, fmt.Sprintf(
			"startTime %s is after endTime %s",
			w.Start.UTC().Format(time.RFC3339), w.End.UTC().Format(time.RFC3339)))
	}
	return violations
}
