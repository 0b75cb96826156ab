package webex

import "context"

// ListAutoAttendants lists auto attendants, optionally scoped to a location.
func (c *Client) ListAutoAttendants(ctx context.Context, locationID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if locationID != "" {
		q["locationId"] = locationID
	}
	return c.listItems(ctx, "/telephony/config/autoAttendants", q)
}

// GetAutoAttendantDetails returns one auto attendant.
func (c *Client) GetAutoAttendantDetails(ctx context.Context, attendantID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/autoAttendants/"+attendantID, nil)
}

// CreateAutoAttendantRequest creates an auto attendant.
type CreateAutoAttendantRequest struct {
	Name             string         `json:"name"`
	LocationID       string         `json:"locationId"`
	PhoneNumber      string         `json:"phoneNumber,omitempty"`
	BusinessSchedule map[string]any `json:"businessSchedule,omitempty"`
	Menu             map[string]any `json:"menu,omitempty"`
}

// CreateAutoAttendant creates a new auto attendant.
func (c *Client) CreateAutoAttendant(ctx context.Context, req CreateAutoAttendantRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/telephony/config/autoAttendants", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAutoAttendant applies a partial update to an auto attendant.
func (c *Client) UpdateAutoAttendant(ctx context.Context, attendantID string, fields map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/telephony/config/autoAttendants/"+attendantID, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAutoAttendant removes an auto attendant.
func (c *Client) DeleteAutoAttendant(ctx context.Context, attendantID string) error {
	return c.delete(ctx, "/telephony/config/autoAttendants/"+attendantID)
}
