package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// AttendantHandler exposes auto attendant management tools.
type AttendantHandler struct {
	client *webex.Client
}

func NewAttendantHandler(c *webex.Client) *AttendantHandler {
	return &AttendantHandler{client: c}
}

// RegisterTools registers the auto attendant tools.
func (ah *AttendantHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_auto_attendants",
		mcp.WithDescription("List auto attendants"),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of attendants to return (default 100)")),
	), ah.handleListAutoAttendants)

	s.AddTool(mcp.NewTool("get_auto_attendant_details",
		mcp.WithDescription("Get details for an auto attendant"),
		mcp.WithString("attendant_id", mcp.Required(), mcp.Description("The auto attendant ID")),
	), ah.handleGetAutoAttendantDetails)

	s.AddTool(mcp.NewTool("create_auto_attendant",
		mcp.WithDescription("Create a new auto attendant"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Attendant name")),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("Location the attendant belongs to")),
		mcp.WithString("phone_number", mcp.Description("Attendant phone number")),
		mcp.WithObject("business_schedule", mcp.Description("Business hours schedule")),
		mcp.WithObject("menu", mcp.Description("Attendant menu configuration")),
	), ah.handleCreateAutoAttendant)

	s.AddTool(mcp.NewTool("update_auto_attendant",
		mcp.WithDescription("Update fields on an auto attendant"),
		mcp.WithString("attendant_id", mcp.Required(), mcp.Description("The auto attendant ID")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Fields to update")),
	), ah.handleUpdateAutoAttendant)

	s.AddTool(mcp.NewTool("delete_auto_attendant",
		mcp.WithDescription("Delete an auto attendant"),
		mcp.WithString("attendant_id", mcp.Required(), mcp.Description("The auto attendant ID")),
	), ah.handleDeleteAutoAttendant)

	return nil
}

func (ah *AttendantHandler) handleListAutoAttendants(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	attendants, err := ah.client.ListAutoAttendants(ctx, optString(req, "location_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_auto_attendants", err), nil
	}
	return jsonResult(map[string]any{"attendants": attendants, "count": len(attendants)}), nil
}

func (ah *AttendantHandler) handleGetAutoAttendantDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	attendantID, err := req.RequireString("attendant_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	attendant, err := ah.client.GetAutoAttendantDetails(ctx, attendantID)
	if err != nil {
		return errResult("get_auto_attendant_details", err), nil
	}
	return jsonResult(attendant), nil
}

func (ah *AttendantHandler) handleCreateAutoAttendant(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	attendant, err := ah.client.CreateAutoAttendant(ctx, webex.CreateAutoAttendantRequest{
		Name:             name,
		LocationID:       locationID,
		PhoneNumber:      optString(req, "phone_number"),
		BusinessSchedule: optObject(req, "business_schedule"),
		Menu:             optObject(req, "menu"),
	})
	if err != nil {
		return errResult("create_auto_attendant", err), nil
	}
	return jsonResult(attendant), nil
}

func (ah *AttendantHandler) handleUpdateAutoAttendant(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	attendantID, err := req.RequireString("attendant_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields := optObject(req, "fields")
	if len(fields) == 0 {
		return mcp.NewToolResultError("fields is required"), nil
	}
	attendant, err := ah.client.UpdateAutoAttendant(ctx, attendantID, fields)
	if err != nil {
		return errResult("update_auto_attendant", err), nil
	}
	return jsonResult(attendant), nil
}

func (ah *AttendantHandler) handleDeleteAutoAttendant(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	attendantID, err := req.RequireString("attendant_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := ah.client.DeleteAutoAttendant(ctx, attendantID); err != nil {
		return errResult("delete_auto_attendant", err), nil
	}
	return jsonResult(map[string]any{"deleted": true, "attendantId": attendantID}), nil
}
