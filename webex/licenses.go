package webex

import "context"

// ListLicenses lists the licenses owned by an organization.
func (c *Client) ListLicenses(ctx context.Context, orgID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if orgID != "" {
		q["orgId"] = orgID
	}
	return c.listItems(ctx, "/licenses", q)
}

// GetLicenseDetails returns one license.
func (c *Client) GetLicenseDetails(ctx context.Context, licenseID string) (map[string]any, error) {
	return c.getMap(ctx, "/licenses/"+licenseID, nil)
}

// ListUserLicenses returns the license ids assigned to a person, read from
// the person record.
func (c *Client) ListUserLicenses(ctx context.Context, personID string) ([]string, error) {
	person, err := c.GetUserDetails(ctx, personID)
	if err != nil {
		return nil, err
	}
	raw, _ := person["licenses"].([]any)
	licenses := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			licenses = append(licenses, s)
		}
	}
	return licenses, nil
}

// AssignLicenseToUser adds a license to a person.
func (c *Client) AssignLicenseToUser(ctx context.Context, personID, licenseID string) (map[string]any, error) {
	var out map[string]any
	body := map[string]any{"personId": personID, "addLicenses": []string{licenseID}}
	if err := c.put(ctx, "/licenses/users", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveLicenseFromUser removes a license from a person.
func (c *Client) RemoveLicenseFromUser(ctx context.Context, personID, licenseID string) (map[string]any, error) {
	var out map[string]any
	body := map[string]any{"personId": personID, "removeLicenses": []string{licenseID}}
	if err := c.put(ctx, "/licenses/users", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
