package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// CDRHandler exposes call history and detail-record reporting tools. The
// detail-record tools ride on the analytics feed and inherit its retry and
// normalization behavior.
type CDRHandler struct {
	client *webex.Client
}

func NewCDRHandler(c *webex.Client) *CDRHandler {
	return &CDRHandler{client: c}
}

// RegisterTools registers the reporting tools.
func (ch *CDRHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("get_call_history",
		mcp.WithDescription("Get recent call history from the primary API (not the detailed CDR feed)"),
		mcp.WithString("person_id", mcp.Description("Filter to calls involving a person")),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithString("start_time", mcp.Description("Window start, ISO 8601")),
		mcp.WithString("end_time", mcp.Description("Window end, ISO 8601")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of calls to return (default 100)")),
	), ch.handleGetCallHistory)

	s.AddTool(mcp.NewTool("get_call_detail_records",
		mcp.WithDescription("Get detailed call records (CDRs) from the analytics feed. Requires a start and end time; records are available from roughly 5 minutes to 48 hours after a call ends."),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("Window start, ISO 8601 (e.g. 2024-01-15T00:00:00.000Z)")),
		mcp.WithString("end_time", mcp.Required(), mcp.Description("Window end, ISO 8601")),
		mcp.WithString("person_id", mcp.Description("Filter records to a person (applied client-side)")),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of records to request (default 100)")),
	), ch.handleGetCallDetailRecords)

	s.AddTool(mcp.NewTool("get_pstn_minutes",
		mcp.WithDescription("Aggregate PSTN usage (total minutes, seconds, and call count) from detail records in a time window"),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("Window start, ISO 8601")),
		mcp.WithString("end_time", mcp.Required(), mcp.Description("Window end, ISO 8601")),
		mcp.WithString("person_id", mcp.Description("Restrict to a person's calls")),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
	), ch.handleGetPSTNMinutes)

	s.AddTool(mcp.NewTool("get_call_analytics",
		mcp.WithDescription("Summarize call volume by direction and call type from detail records in a time window"),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("Window start, ISO 8601")),
		mcp.WithString("end_time", mcp.Required(), mcp.Description("Window end, ISO 8601")),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
	), ch.handleGetCallAnalytics)

	s.AddTool(mcp.NewTool("get_user_call_statistics",
		mcp.WithDescription("Summarize a person's calls (total, inbound, outbound, duration) from detail records in a time window"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("Window start, ISO 8601")),
		mcp.WithString("end_time", mcp.Required(), mcp.Description("Window end, ISO 8601")),
	), ch.handleGetUserCallStatistics)

	s.AddTool(mcp.NewTool("export_call_records",
		mcp.WithDescription("Export detail records from a time window as CSV or JSON text"),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("Window start, ISO 8601")),
		mcp.WithString("end_time", mcp.Required(), mcp.Description("Window end, ISO 8601")),
		mcp.WithString("format", mcp.Description("csv or json (default csv)")),
		mcp.WithString("person_id", mcp.Description("Restrict to a person's calls")),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
	), ch.handleExportCallRecords)

	return nil
}

// cdrQueryFromRequest builds a CDRQuery from the common tool arguments.
func cdrQueryFromRequest(req mcp.CallToolRequest) webex.CDRQuery {
	return webex.CDRQuery{
		StartTime:  optString(req, "start_time"),
		EndTime:    optString(req, "end_time"),
		PersonID:   optString(req, "person_id"),
		LocationID: optString(req, "location_id"),
		MaxResults: optInt(req, "max_results", 0),
	}
}

func (ch *CDRHandler) handleGetCallHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	calls, err := ch.client.GetCallHistory(ctx,
		optString(req, "person_id"),
		optString(req, "location_id"),
		optString(req, "start_time"),
		optString(req, "end_time"),
		optInt(req, "max_results", 0))
	if err != nil {
		return errResult("get_call_history", err), nil
	}
	return jsonResult(map[string]any{"calls": calls, "count": len(calls)}), nil
}

func (ch *CDRHandler) handleGetCallDetailRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("start_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := req.RequireString("end_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	records, err := ch.client.GetCallDetailRecords(ctx, cdrQueryFromRequest(req))
	if err != nil {
		return errResult("get_call_detail_records", err), nil
	}
	return jsonResult(map[string]any{"records": records, "count": len(records)}), nil
}

func (ch *CDRHandler) handleGetPSTNMinutes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("start_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := req.RequireString("end_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	summary, err := ch.client.GetPSTNMinutes(ctx, cdrQueryFromRequest(req))
	if err != nil {
		return errResult("get_pstn_minutes", err), nil
	}
	return jsonResult(summary), nil
}

func (ch *CDRHandler) handleGetCallAnalytics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("start_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := req.RequireString("end_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	analytics, err := ch.client.GetCallAnalytics(ctx, cdrQueryFromRequest(req))
	if err != nil {
		return errResult("get_call_analytics", err), nil
	}
	return jsonResult(analytics), nil
}

func (ch *CDRHandler) handleGetUserCallStatistics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := req.RequireString("start_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := req.RequireString("end_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	stats, err := ch.client.GetUserCallStatistics(ctx, personID, cdrQueryFromRequest(req))
	if err != nil {
		return errResult("get_user_call_statistics", err), nil
	}
	return jsonResult(stats), nil
}

func (ch *CDRHandler) handleExportCallRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("start_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := req.RequireString("end_time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := optString(req, "format")
	if format == "" {
		format = "csv"
	}
	out, err := ch.client.ExportCallRecords(ctx, cdrQueryFromRequest(req), format)
	if err != nil {
		return errResult("export_call_records", err), nil
	}
	return mcp.NewToolResultText(out), nil
}
