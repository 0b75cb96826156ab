package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// VoicemailHandler exposes voicemail settings and message tools.
type VoicemailHandler struct {
	client *webex.Client
}

func NewVoicemailHandler(c *webex.Client) *VoicemailHandler {
	return &VoicemailHandler{client: c}
}

// RegisterTools registers the voicemail tools.
func (vh *VoicemailHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("get_user_voicemail_settings",
		mcp.WithDescription("Get voicemail settings for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), vh.handleGetUserVoicemailSettings)

	s.AddTool(mcp.NewTool("update_user_voicemail_settings",
		mcp.WithDescription("Update voicemail settings for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithObject("settings", mcp.Required(), mcp.Description("Voicemail settings to apply")),
	), vh.handleUpdateUserVoicemailSettings)

	s.AddTool(mcp.NewTool("list_voicemail_messages",
		mcp.WithDescription("List voicemail messages for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of messages to return (default 100)")),
	), vh.handleListVoicemailMessages)

	s.AddTool(mcp.NewTool("get_voicemail_message",
		mcp.WithDescription("Get a voicemail message"),
		mcp.WithString("message_id", mcp.Required(), mcp.Description("The message ID")),
	), vh.handleGetVoicemailMessage)

	s.AddTool(mcp.NewTool("delete_voicemail_message",
		mcp.WithDescription("Delete a voicemail message"),
		mcp.WithString("message_id", mcp.Required(), mcp.Description("The message ID")),
	), vh.handleDeleteVoicemailMessage)

	return nil
}

func (vh *VoicemailHandler) handleGetUserVoicemailSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings, err := vh.client.GetUserVoicemailSettings(ctx, personID)
	if err != nil {
		return errResult("get_user_voicemail_settings", err), nil
	}
	return jsonResult(settings), nil
}

func (vh *VoicemailHandler) handleUpdateUserVoicemailSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings := optObject(req, "settings")
	if len(settings) == 0 {
		return mcp.NewToolResultError("settings is required"), nil
	}
	out, err := vh.client.UpdateUserVoicemailSettings(ctx, personID, settings)
	if err != nil {
		return errResult("update_user_voicemail_settings", err), nil
	}
	return jsonResult(out), nil
}

func (vh *VoicemailHandler) handleListVoicemailMessages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	messages, err := vh.client.ListVoicemailMessages(ctx, personID, optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_voicemail_messages", err), nil
	}
	return jsonResult(map[string]any{"messages": messages, "count": len(messages)}), nil
}

func (vh *VoicemailHandler) handleGetVoicemailMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messageID, err := req.RequireString("message_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	message, err := vh.client.GetVoicemailMessage(ctx, messageID)
	if err != nil {
		return errResult("get_voicemail_message", err), nil
	}
	return jsonResult(message), nil
}

func (vh *VoicemailHandler) handleDeleteVoicemailMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messageID, err := req.RequireString("message_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := vh.client.DeleteVoicemailMessage(ctx, messageID); err != nil {
		return errResult("delete_voicemail_message", err), nil
	}
	return jsonResult(map[string]any{"deleted": true, "messageId": messageID}), nil
}
