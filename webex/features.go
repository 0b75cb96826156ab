package webex

import "context"

// Per-person calling feature settings.

// GetCallForwardingSettings returns a person's call forwarding rules.
func (c *Client) GetCallForwardingSettings(ctx context.Context, personID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/people/"+personID+"/callForwarding", nil)
}

// UpdateCallForwardingSettings updates a person's call forwarding rules.
func (c *Client) UpdateCallForwardingSettings(ctx context.Context, personID string, settings map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/telephony/config/people/"+personID+"/callForwarding", settings, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCallParkSettings returns a person's call park configuration.
func (c *Client) GetCallParkSettings(ctx context.Context, personID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/people/"+personID+"/callPark", nil)
}

// GetSimultaneousRingSettings returns a person's simultaneous ring targets.
func (c *Client) GetSimultaneousRingSettings(ctx context.Context, personID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/people/"+personID+"/simultaneousRing", nil)
}

// UpdateSimultaneousRingSettings updates a person's simultaneous ring
// targets.
func (c *Client) UpdateSimultaneousRingSettings(ctx context.Context, personID string, settings map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/telephony/config/people/"+personID+"/simultaneousRing", settings, &out); err != nil {
		return nil, err
	}
	return out, nil
}
