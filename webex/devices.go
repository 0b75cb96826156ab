package webex

import "context"

// ListDevices lists devices, optionally filtered by owner or location.
func (c *Client) ListDevices(ctx context.Context, personID, locationID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if personID != "" {
		q["personId"] = personID
	}
	if locationID != "" {
		q["locationId"] = locationID
	}
	return c.listItems(ctx, "/devices", q)
}

// GetDeviceDetails returns one device.
func (c *Client) GetDeviceDetails(ctx context.Context, deviceID string) (map[string]any, error) {
	return c.getMap(ctx, "/devices/"+deviceID, nil)
}

// AssociateDeviceToUser assigns a device to a person.
func (c *Client) AssociateDeviceToUser(ctx context.Context, deviceID, personID string) (map[string]any, error) {
	var out map[string]any
	body := map[string]any{"personId": personID}
	if err := c.put(ctx, "/devices/"+deviceID+"/owner", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnassociateDevice removes a device's person assignment.
func (c *Client) UnassociateDevice(ctx context.Context, deviceID string) error {
	return c.delete(ctx, "/devices/"+deviceID+"/owner")
}

// ProvisionDevice requests an activation code binding a device to a person
// at a location.
func (c *Client) ProvisionDevice(ctx context.Context, deviceID, personID, locationID string) (map[string]any, error) {
	var out map[string]any
	body := map[string]any{
		"deviceId":   deviceID,
		"personId":   personID,
		"locationId": locationID,
	}
	if err := c.post(ctx, "/devices/activationCode", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActivateDevice brings a device into service.
func (c *Client) ActivateDevice(ctx context.Context, deviceID string) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/telephony/config/devices/"+deviceID+"/actions/activate/invoke", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeactivateDevice takes a device out of service.
func (c *Client) DeactivateDevice(ctx context.Context, deviceID string) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/telephony/config/devices/"+deviceID+"/actions/deactivate/invoke", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDeviceAssociations returns the people and workspaces a device serves.
func (c *Client) GetDeviceAssociations(ctx context.Context, deviceID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/devices/"+deviceID+"/members", nil)
}

// ListUserDevices returns the devices assigned to a person.
func (c *Client) ListUserDevices(ctx context.Context, personID string) ([]map[string]any, error) {
	var env struct {
		Devices []map[string]any `json:"devices"`
		Items   []map[string]any `json:"items"`
	}
	if err := c.get(ctx, "/telephony/config/people/"+personID+"/devices", nil, &env); err != nil {
		return nil, err
	}
	if env.Devices != nil {
		return env.Devices, nil
	}
	return env.Items, nil
}
