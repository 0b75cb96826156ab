package webex

import "context"

// ListUsers lists people, optionally filtered by organization or location.
func (c *Client) ListUsers(ctx context.Context, orgID, locationID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if orgID != "" {
		q["orgId"] = orgID
	}
	if locationID != "" {
		q["locationId"] = locationID
	}
	return c.listItems(ctx, "/people", q)
}

// GetUserDetails returns one person record.
func (c *Client) GetUserDetails(ctx context.Context, personID string) (map[string]any, error) {
	return c.getMap(ctx, "/people/"+personID, nil)
}

// GetUserByEmail returns the person with the given email address, or nil
// when no match exists.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (map[string]any, error) {
	items, err := c.listItems(ctx, "/people", map[string]string{"email": email})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

// SearchUsers queries people by display name and by email and merges the
// two result sets, deduplicating on person id.
func (c *Client) SearchUsers(ctx context.Context, query, orgID string, max int) ([]map[string]any, error) {
	byName := map[string]string{"displayName": query, "max": maxParam(max)}
	if orgID != "" {
		byName["orgId"] = orgID
	}
	nameItems, err := c.listItems(ctx, "/people", byName)
	if err != nil {
		return nil, err
	}
	emailItems, err := c.listItems(ctx, "/people", map[string]string{"email": query, "max": maxParam(max)})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []map[string]any
	for _, item := range append(nameItems, emailItems...) {
		id, _ := item["id"].(string)
		if id != "" && seen[id] {
			continue
		}
		seen[id] = true
		merged = append(merged, item)
	}
	return merged, nil
}

// CreateUserRequest creates a person.
type CreateUserRequest struct {
	Emails      []string `json:"emails"`
	DisplayName string   `json:"displayName"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	OrgID       string   `json:"orgId,omitempty"`
	LocationID  string   `json:"locationId,omitempty"`
}

// CreateUser creates a new person.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/people", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser applies a partial update to a person.
func (c *Client) UpdateUser(ctx context.Context, personID string, fields map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/people/"+personID, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes a person.
func (c *Client) DeleteUser(ctx context.Context, personID string) error {
	return c.delete(ctx, "/people/"+personID)
}

// GetUserCallingSettings returns a person's telephony configuration.
func (c *Client) GetUserCallingSettings(ctx context.Context, personID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/people/"+personID, nil)
}

// UpdateUserExtension updates extension and identity fields on a person's
// calling configuration. Only non-nil fields are sent.
func (c *Client) UpdateUserExtension(ctx context.Context, personID string, fields map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/telephony/config/people/"+personID, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUserCallingFeatures toggles feature flags (call park, forwarding,
// voicemail, recording, waiting) on a person's calling configuration.
func (c *Client) UpdateUserCallingFeatures(ctx context.Context, personID string, features map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/telephony/config/people/"+personID+"/features", features, &out); err != nil {
		return nil, err
	}
	return out, nil
}
