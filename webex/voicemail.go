package webex

import "context"

// GetUserVoicemailSettings returns a person's voicemail configuration.
func (c *Client) GetUserVoicemailSettings(ctx context.Context, personID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/people/"+personID+"/voicemail", nil)
}

// UpdateUserVoicemailSettings updates a person's voicemail configuration.
func (c *Client) UpdateUserVoicemailSettings(ctx context.Context, personID string, settings map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/telephony/config/people/"+personID+"/voicemail", settings, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVoicemailMessages lists a person's voicemail messages.
func (c *Client) ListVoicemailMessages(ctx context.Context, personID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if personID != "" {
		q["personId"] = personID
	}
	return c.listItems(ctx, "/telephony/voiceMessages", q)
}

// GetVoicemailMessage returns one voicemail message.
func (c *Client) GetVoicemailMessage(ctx context.Context, messageID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/voiceMessages/"+messageID, nil)
}

// DeleteVoicemailMessage removes a voicemail message.
func (c *Client) DeleteVoicemailMessage(ctx context.Context, messageID string) error {
	return c.delete(ctx, "/telephony/voiceMessages/"+messageID)
}
