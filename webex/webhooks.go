package webex

import "context"

// ListWebhooks lists registered webhooks.
func (c *Client) ListWebhooks(ctx context.Context, max int) ([]map[string]any, error) {
	return c.listItems(ctx, "/webhooks", map[string]string{"max": maxParam(max)})
}

// CreateWebhookRequest registers a webhook.
type CreateWebhookRequest struct {
	Name      string `json:"name"`
	TargetURL string `json:"targetUrl"`
	Resource  string `json:"resource"`
	Event     string `json:"event"`
	Secret    string `json:"secret,omitempty"`
}

// CreateWebhook registers a new webhook.
func (c *Client) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/webhooks", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWebhookDetails returns one webhook.
func (c *Client) GetWebhookDetails(ctx context.Context, webhookID string) (map[string]any, error) {
	return c.getMap(ctx, "/webhooks/"+webhookID, nil)
}

// UpdateWebhook applies a partial update to a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, fields map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.put(ctx, "/webhooks/"+webhookID, fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	return c.delete(ctx, "/webhooks/"+webhookID)
}
