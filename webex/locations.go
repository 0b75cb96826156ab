package webex

import "context"

// ListLocations lists locations, optionally scoped to an organization.
func (c *Client) ListLocations(ctx context.Context, orgID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if orgID != "" {
		q["orgId"] = orgID
	}
	return c.listItems(ctx, "/locations", q)
}

// GetLocationDetails returns one location.
func (c *Client) GetLocationDetails(ctx context.Context, locationID string) (map[string]any, error) {
	return c.getMap(ctx, "/locations/"+locationID, nil)
}

// CreateLocationRequest creates a location. Address follows the upstream
// address object shape.
type CreateLocationRequest struct {
	Name              string         `json:"name"`
	Address           map[string]any `json:"address"`
	OrgID             string         `json:"orgId,omitempty"`
	EmergencyLocation *bool          `json:"emergencyLocation,omitempty"`
}

// CreateLocation creates a new location.
func (c *Client) CreateLocation(ctx context.Context, req CreateLocationRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/locations", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateLocation applies a partial update to a location.
func (c *Client) UpdateLocation(ctx context.Context, locationID string, fields map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/locations/"+locationID, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLocation removes a location.
func (c *Client) DeleteLocation(ctx context.Context, locationID string) error {
	return c.delete(ctx, "/locations/"+locationID)
}

// GetLocationFeatures returns the calling features enabled for a location.
func (c *Client) GetLocationFeatures(ctx context.Context, locationID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/locations/"+locationID+"/features", nil)
}
