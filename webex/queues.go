package webex

import "context"

// ListCallQueues lists call queues, optionally scoped to a location.
func (c *Client) ListCallQueues(ctx context.Context, locationID string, max int) ([]map[string]any, error) {
	q := map[string]string{"max": maxParam(max)}
	if locationID != "" {
		q["locationId"] = locationID
	}
	return c.listItems(ctx, "/telephony/config/queues", q)
}

// GetCallQueueDetails returns one call queue.
func (c *Client) GetCallQueueDetails(ctx context.Context, queueID string) (map[string]any, error) {
	return c.getMap(ctx, "/telephony/config/queues/"+queueID, nil)
}

// CreateCallQueueRequest creates a call queue.
type CreateCallQueueRequest struct {
	Name         string         `json:"name"`
	LocationID   string         `json:"locationId"`
	PhoneNumber  string         `json:"phoneNumber,omitempty"`
	CallPolicies map[string]any `json:"callPolicies,omitempty"`
}

// CreateCallQueue creates a new call queue.
func (c *Client) CreateCallQueue(ctx context.Context, req CreateCallQueueRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/telephony/config/queues", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCallQueue applies a partial update to a call queue.
func (c *Client) UpdateCallQueue(ctx context.Context, queueID string, fields map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/telephony/config/queues/"+queueID, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCallQueue removes a call queue.
func (c *Client) DeleteCallQueue(ctx context.Context, queueID string) error {
	return c.delete(ctx, "/telephony/config/queues/"+queueID)
}

// ListQueueAgents returns the agents assigned to a call queue.
func (c *Client) ListQueueAgents(ctx context.Context, queueID string) ([]map[string]any, error) {
	return c.listItems(ctx, "/telephony/config/queues/"+queueID+"/agents", nil)
}

// AddAgentToQueue assigns an agent to a call queue with an optional skill
// level (0 means unset).
func (c *Client) AddAgentToQueue(ctx context.Context, queueID, personID string, skillLevel int) (map[string]any, error) {
	body := map[string]any{"personId": personID}
	if skillLevel > 0 {
		body["skillLevel"] = skillLevel
	}
	var out map[string]any
	if err := c.post(ctx, "/telephony/config/queues/"+queueID+"/agents", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveAgentFromQueue removes an agent from a call queue.
func (c *Client) RemoveAgentFromQueue(ctx context.Context, queueID, personID string) error {
	return c.delete(ctx, "/telephony/config/queues/"+queueID+"/agents/"+personID)
}
