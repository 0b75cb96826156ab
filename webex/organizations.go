package webex

import "context"

// GetOrganizationInfo returns the organizations visible to the token.
func (c *Client) GetOrganizationInfo(ctx context.Context) (map[string]any, error) {
	return c.getMap(ctx, "/organizations", nil)
}

// GetMyInfo returns the authenticated user's own person record.
func (c *Client) GetMyInfo(ctx context.Context) (map[string]any, error) {
	return c.getMap(ctx, "/people/me", nil)
}
