package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// WebhookHandler exposes webhook management tools.
type WebhookHandler struct {
	client *webex.Client
}

func NewWebhookHandler(c *webex.Client) *WebhookHandler {
	return &WebhookHandler{client: c}
}

// RegisterTools registers the webhook tools.
func (wh *WebhookHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_webhooks",
		mcp.WithDescription("List registered webhooks"),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of webhooks to return (default 100)")),
	), wh.handleListWebhooks)

	s.AddTool(mcp.NewTool("create_webhook",
		mcp.WithDescription("Register a new webhook"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Webhook name")),
		mcp.WithString("target_url", mcp.Required(), mcp.Description("URL to deliver events to")),
		mcp.WithString("resource", mcp.Required(), mcp.Description("Resource to watch, e.g. telephony_calls")),
		mcp.WithString("event", mcp.Required(), mcp.Description("Event to watch, e.g. created")),
		mcp.WithString("secret", mcp.Description("Shared secret for payload signing")),
	), wh.handleCreateWebhook)

	s.AddTool(mcp.NewTool("get_webhook_details",
		mcp.WithDescription("Get details for a webhook"),
		mcp.WithString("webhook_id", mcp.Required(), mcp.Description("The webhook ID")),
	), wh.handleGetWebhookDetails)

	s.AddTool(mcp.NewTool("update_webhook",
		mcp.WithDescription("Update fields on a webhook"),
		mcp.WithString("webhook_id", mcp.Required(), mcp.Description("The webhook ID")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Fields to update, e.g. name or targetUrl")),
	), wh.handleUpdateWebhook)

	s.AddTool(mcp.NewTool("delete_webhook",
		mcp.WithDescription("Delete a webhook"),
		mcp.WithString("webhook_id", mcp.Required(), mcp.Description("The webhook ID")),
	), wh.handleDeleteWebhook)

	return nil
}

func (wh *WebhookHandler) handleListWebhooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhooks, err := wh.client.ListWebhooks(ctx, optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_webhooks", err), nil
	}
	return jsonResult(map[string]any{"webhooks": webhooks, "count": len(webhooks)}), nil
}

func (wh *WebhookHandler) handleCreateWebhook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	targetURL, err := req.RequireString("target_url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resource, err := req.RequireString("resource")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	event, err := req.RequireString("event")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	webhook, err := wh.client.CreateWebhook(ctx, webex.CreateWebhookRequest{
		Name:      name,
		TargetURL: targetURL,
		Resource:  resource,
		Event:     event,
		Secret:    optString(req, "secret"),
	})
	if err != nil {
		return errResult("create_webhook", err), nil
	}
	return jsonResult(webhook), nil
}

func (wh *WebhookHandler) handleGetWebhookDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhookID, err := req.RequireString("webhook_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	webhook, err := wh.client.GetWebhookDetails(ctx, webhookID)
	if err != nil {
		return errResult("get_webhook_details", err), nil
	}
	return jsonResult(webhook), nil
}

func (wh *WebhookHandler) handleUpdateWebhook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhookID, err := req.RequireString("webhook_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields := optObject(req, "fields")
	if len(fields) == 0 {
		return mcp.NewToolResultError("fields is required"), nil
	}
	webhook, err := wh.client.UpdateWebhook(ctx, webhookID, fields)
	if err != nil {
		return errResult("update_webhook", err), nil
	}
	return jsonResult(webhook), nil
}

func (wh *WebhookHandler) handleDeleteWebhook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhookID, err := req.RequireString("webhook_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := wh.client.DeleteWebhook(ctx, webhookID); err != nil {
		return errResult("delete_webhook", err), nil
	}
	return jsonResult(map[string]any{"deleted": true, "webhookId": webhookID}), nil
}
