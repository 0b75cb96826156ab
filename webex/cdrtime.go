package webex

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimestampEncoding selects the wire format for an analytics timestamp.
type TimestampEncoding int

const (
	// EncodingISOMillis is ISO-8601 UTC with exactly three fractional
	// digits, e.g. 2024-01-01T00:00:00.500Z. This is the documented format
	// for the CDR feed.
	EncodingISOMillis TimestampEncoding = iota
	// EncodingISO is ISO-8601 UTC without fractional seconds.
	EncodingISO
	// EncodingEpochMillis is integer milliseconds since the Unix epoch.
	EncodingEpochMillis
)

// FormatTimestamp renders t in the requested encoding.
//
// When zeroMillisFix is set and the true millisecond component is exactly
// zero, EncodingISOMillis emits .001 instead of .000: the analytics endpoint
// has been observed to reject an all-zero millisecond field on some inputs.
func FormatTimestamp(t time.Time, enc TimestampEncoding, zeroMillisFix bool) string {
	t = t.UTC()
	switch enc {
	case EncodingISO:
		return t.Format("2006-01-02T15:04:05Z")
	case EncodingEpochMillis:
		return strconv.FormatInt(t.UnixMilli(), 10)
	default:
		ms := t.Nanosecond() / int(time.Millisecond)
		if ms == 0 && zeroMillisFix {
			ms = 1
		}
		return t.Format("2006-01-02T15:04:05") + "." + pad3(ms) + "Z"
	}
}

func pad3(ms int) string {
	s := strconv.Itoa(ms)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// timestampLayouts are tried in order when parsing caller-supplied strings.
// Inputs without an offset are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a caller-supplied timestamp permissively: trailing
// Z, explicit offsets, fractional seconds, and a space in place of the T
// separator are all accepted.
func ParseTimestamp(in string) (time.Time, bool) {
	s := strings.TrimSpace(in)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms > 0 {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}

// malformedFraction matches a fractional-seconds suffix of any length,
// optionally followed by a zone designator.
var malformedFraction = regexp.MustCompile(`\.\d*(Z|[+-]\d{2}:?\d{2})?$`)

// CanonicalizeTimestamp coerces a caller-supplied timestamp string into the
// requested wire encoding.
//
// The function never fails for a non-empty input: if the string cannot be
// parsed, a best-effort repair strips a malformed fractional suffix and
// retries; if that also fails the cleaned input is returned verbatim so the
// request can still be attempted and the upstream's own rejection surfaced.
func CanonicalizeTimestamp(in string, enc TimestampEncoding, zeroMillisFix bool) string {
	s := strings.TrimSpace(in)
	if t, ok := ParseTimestamp(s); ok {
		return FormatTimestamp(t, enc, zeroMillisFix)
	}

	if enc == EncodingISOMillis {
		if m := malformedFraction.FindStringSubmatch(s); m != nil {
			repaired := malformedFraction.ReplaceAllString(s, m[1])
			if t, ok := ParseTimestamp(repaired); ok {
				return FormatTimestamp(t, enc, zeroMillisFix)
			}
		}
	}
	// Deliberate lossy fallback.
	return s
}
