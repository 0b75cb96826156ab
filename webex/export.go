package webex

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ExportCallRecords fetches CDRs for the window and renders them in the
// requested format ("csv" or "json"). The CSV header is the sorted union of
// every field name seen, since record shapes vary between feed revisions.
func (c *Client) ExportCallRecords(ctx context.Context, q CDRQuery, format string) (string, error) {
	records, err := c.GetCallDetailRecords(ctx, q)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(format) {
	case "", "csv":
		return recordsToCSV(records)
	case "json":
		b, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("webex: unsupported export format %q (want csv or json)", format)
	}
}

func recordsToCSV(records []CDRRecord) (string, error) {
	fieldSet := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			fieldSet[k] = true
		}
	}
	header := make([]string, 0, len(fieldSet))
	for k := range fieldSet {
		header = append(header, k)
	}
	sort.Strings(header)

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(header); err != nil {
		return "", err
	}
	row := make([]string, len(header))
	for _, rec := range records {
		for i, k := range header {
			row[i] = fieldToString(rec[k])
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

func fieldToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// Avoid scientific notation for ids and durations.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
