package webex

import "context"

// ListHuntGroups lists hunt groups, optionally scoped to a location.
func (c *Client) ListHuntGroups(ctx context.Context, locationID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if locationID != "" {
		q["locationId"] = locationID
	}
	return c.listItems(ctx, "/telephony/config/huntGroups", q)
}

// GetHuntGroupDetails returns one hunt group.
func (c *Client) GetHuntGroupDetails(ctx context.Context, huntGroupID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/huntGroups/"+huntGroupID, nil)
}

// CreateHuntGroupRequest creates a hunt group.
type CreateHuntGroupRequest struct {
	Name         string `json:"name"`
	LocationID   string `json:"locationId"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Distribution string `json:"distribution,omitempty"`
}

// CreateHuntGroup creates a new hunt group.
func (c *Client) CreateHuntGroup(ctx context.Context, req CreateHuntGroupRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/telephony/config/huntGroups", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateHuntGroup applies a partial update to a hunt group.
func (c *Client) UpdateHuntGroup(ctx context.Context, huntGroupID string, fields map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/telephony/config/huntGroups/"+huntGroupID, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteHuntGroup removes a hunt group.
func (c *Client) DeleteHuntGroup(ctx context.Context, huntGroupID string) error {
	return c.delete(ctx, "/telephony/config/huntGroups/"+huntGroupID)
}

// AddMemberToHuntGroup adds a person to a hunt group.
func (c *Client) AddMemberToHuntGroup(ctx context.Context, huntGroupID, personID string) (map[string]any, error) {
	var out map[string]any
	body := map[string]any{"personId": personID}
	if err := c.post(ctx, "/telephony/config/huntGroups/"+huntGroupID+"/members", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveMemberFromHuntGroup removes a person from a hunt group.
func (c *Client) RemoveMemberFromHuntGroup(ctx context.Context, huntGroupID, personID string) error {
	return c.delete(ctx, "/telephony/config/huntGroups/"+huntGroupID+"/members/"+personID)
}
