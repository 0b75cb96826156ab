package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// TelephonyHandler exposes trunk, call park, and recording tools.
type TelephonyHandler struct {
	client *webex.Client
}

func NewTelephonyHandler(c *webex.Client) *TelephonyHandler {
	return &TelephonyHandler{client: c}
}

// RegisterTools registers the telephony configuration tools.
func (th *TelephonyHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_trunk_groups",
		mcp.WithDescription("List premise PSTN trunk groups"),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of trunk groups to return (default 100)")),
	), th.handleListTrunkGroups)

	s.AddTool(mcp.NewTool("get_trunk_group_details",
		mcp.WithDescription("Get details for a trunk group"),
		mcp.WithString("trunk_group_id", mcp.Required(), mcp.Description("The trunk group ID")),
	), th.handleGetTrunkGroupDetails)

	s.AddTool(mcp.NewTool("list_call_park_extensions",
		mcp.WithDescription("List call park extensions"),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of extensions to return (default 100)")),
	), th.handleListCallParkExtensions)

	s.AddTool(mcp.NewTool("list_call_recordings",
		mcp.WithDescription("List call recordings"),
		mcp.WithString("person_id", mcp.Description("Filter to recordings owned by a person")),
		mcp.WithString("start_time", mcp.Description("Window start, ISO 8601")),
		mcp.WithString("end_time", mcp.Description("Window end, ISO 8601")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of recordings to return (default 100)")),
	), th.handleListCallRecordings)

	s.AddTool(mcp.NewTool("get_call_recording",
		mcp.WithDescription("Get details for a call recording"),
		mcp.WithString("recording_id", mcp.Required(), mcp.Description("The recording ID")),
	), th.handleGetCallRecording)

	return nil
}

func (th *TelephonyHandler) handleListTrunkGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	trunks, err := th.client.ListTrunkGroups(ctx, optString(req, "location_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_trunk_groups", err), nil
	}
	return jsonResult(map[string]any{"trunkGroups": trunks, "count": len(trunks)}), nil
}

func (th *TelephonyHandler) handleGetTrunkGroupDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	trunkGroupID, err := req.RequireString("trunk_group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	trunk, err := th.client.GetTrunkGroupDetails(ctx, trunkGroupID)
	if err != nil {
		return errResult("get_trunk_group_details", err), nil
	}
	return jsonResult(trunk), nil
}

func (th *TelephonyHandler) handleListCallParkExtensions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	extensions, err := th.client.ListCallParkExtensions(ctx, optString(req, "location_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_call_park_extensions", err), nil
	}
	return jsonResult(map[string]any{"extensions": extensions, "count": len(extensions)}), nil
}

func (th *TelephonyHandler) handleListCallRecordings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recordings, err := th.client.ListCallRecordings(ctx, optString(req, "person_id"), optString(req, "start_time"), optString(req, "end_time"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_call_recordings", err), nil
	}
	return jsonResult(map[string]any{"recordings": recordings, "count": len(recordings)}), nil
}

func (th *TelephonyHandler) handleGetCallRecording(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recordingID, err := req.RequireString("recording_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	recording, err := th.client.GetCallRecording(ctx, recordingID)
	if err != nil {
		return errResult("get_call_recording", err), nil
	}
	return jsonResult(recording), nil
}
