package webex

import "context"

// GetCallHistory returns recent call history from the primary API. Unlike
// the CDR feed this endpoint accepts server-side person and location
// filters but reports far less detail per call.
func (c *Client) GetCallHistory(ctx context.Context, personID, locationID, startTime, endTime string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if personID != "" {
		q["personId"] = personID
	}
	if locationID != "" {
		q["locationId"] = locationID
	}
	if startTime != "" {
		q["startTime"] = startTime
	}
	if endTime != "" {
		q["endTime"] = endTime
	}
	return c.listItems(ctx, "/telephony/calls/callHistory", q)
}

// ListCallRecordings lists call recordings in a window.
func (c *Client) ListCallRecordings(ctx context.Context, personID, startTime, endTime string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if personID != "" {
		q["personId"] = personID
	}
	if startTime != "" {
		q["from"] = startTime
	}
	if endTime != "" {
		q["to"] = endTime
	}
	return c.listItems(ctx, "/recordings", q)
}

// GetCallRecording returns one call recording's metadata.
func (c *Client) GetCallRecording(ctx context.Context, recordingID string) (map[string]any, error) {
	return c.getMap(ctx, "/recordings/"+recordingID, nil)
}

// ListTrunkGroups lists PSTN trunk groups, optionally scoped to a location.
func (c *Client) ListTrunkGroups(ctx context.Context, locationID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if locationID != "" {
		q["locationId"] = locationID
	}
	return c.listItems(ctx, "/telephony/config/premisePstn/trunks", q)
}

// GetTrunkGroupDetails returns one trunk group.
func (c *Client) GetTrunkGroupDetails(ctx context.Context, trunkGroupID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/premisePstn/trunks/"+trunkGroupID, nil)
}

// ListCallParkExtensions lists call park extensions, optionally scoped to a
// location.
func (c *Client) ListCallParkExtensions(ctx context.Context, locationID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if locationID != "" {
		q["locationId"] = locationID
	}
	return c.listItems(ctx, "/telephony/config/callParkExtensions", q)
}
