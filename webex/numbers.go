package webex

import "context"

// ListPhoneNumbers lists phone numbers, optionally filtered by location,
// organization, or a number pattern.
func (c *Client) ListPhoneNumbers(ctx context.Context, locationID, orgID, number string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if locationID != "" {
		q["locationId"] = locationID
	}
	if orgID != "" {
		q["orgId"] = orgID
	}
	if number != "" {
		q["phoneNumber"] = number
	}
	return c.listItems(ctx, "/telephony/config/numbers", q)
}

// GetPhoneNumberDetails returns one phone number.
func (c *Client) GetPhoneNumberDetails(ctx context.Context, numberID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/numbers/"+numberID, nil)
}

// AssignPhoneNumberToUser assigns a number to a person.
func (c *Client) AssignPhoneNumberToUser(ctx context.Context, personID, numberID string) (map[string]any, error) {
	var out map[string]any
	body := map[string]any{"phoneNumberId": numberID}
	if err := c.put(ctx, "/telephony/config/people/"+personID+"/numbers", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignPhoneNumberToLocation moves a number into a location's inventory.
func (c *Client) AssignPhoneNumberToLocation(ctx context.Context, numberID, locationID string) (map[string]any, error) {
	var out map[string]any
	body := map[string]any{"phoneNumberId": numberID}
	if err := c.post(ctx, "/telephony/config/locations/"+locationID+"/numbers", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnassignPhoneNumber detaches a number from its current owner.
func (c *Client) UnassignPhoneNumber(ctx context.Context, numberID string) error {
	return c.delete(ctx, "/telephony/config/numbers/"+numberID+"/assignment")
}

// SearchAvailablePhoneNumbers searches the inventory for numbers a location
// could claim.
func (c *Client) SearchAvailablePhoneNumbers(ctx context.Context, locationID, areaCode, state, country string) ([]map[string]any, error) {
	q := map[string]string{}
	if areaCode != "" {
		q["areaCode"] = areaCode
	}
	if state != "" {
		q["state"] = state
	}
	if country != "" {
		q["country"] = country
	}
	return c.listItems(ctx, "/telephony/config/locations/"+locationID+"/numbers/available", q)
}
