package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// HuntGroupHandler exposes hunt group management tools.
type HuntGroupHandler struct {
	client *webex.Client
}

func NewHuntGroupHandler(c *webex.Client) *HuntGroupHandler {
	return &HuntGroupHandler{client: c}
}

// RegisterTools registers the hunt group tools.
func (hh *HuntGroupHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_hunt_groups",
		mcp.WithDescription("List hunt groups"),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of hunt groups to return (default 100)")),
	), hh.handleListHuntGroups)

	s.AddTool(mcp.NewTool("get_hunt_group_details",
		mcp.WithDescription("Get details for a hunt group"),
		mcp.WithString("hunt_group_id", mcp.Required(), mcp.Description("The hunt group ID")),
	), hh.handleGetHuntGroupDetails)

	s.AddTool(mcp.NewTool("create_hunt_group",
		mcp.WithDescription("Create a new hunt group"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Hunt group name")),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("Location the hunt group belongs to")),
		mcp.WithString("phone_number", mcp.Description("Hunt group phone number")),
		mcp.WithString("distribution", mcp.Description("Call distribution policy, e.g. REGULAR or CIRCULAR")),
	), hh.handleCreateHuntGroup)

	s.AddTool(mcp.NewTool("update_hunt_group",
		mcp.WithDescription("Update fields on a hunt group"),
		mcp.WithString("hunt_group_id", mcp.Required(), mcp.Description("The hunt group ID")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Fields to update")),
	), hh.handleUpdateHuntGroup)

	s.AddTool(mcp.NewTool("delete_hunt_group",
		mcp.WithDescription("Delete a hunt group"),
		mcp.WithString("hunt_group_id", mcp.Required(), mcp.Description("The hunt group ID")),
	), hh.handleDeleteHuntGroup)

	s.AddTool(mcp.NewTool("add_member_to_hunt_group",
		mcp.WithDescription("Add a person to a hunt group"),
		mcp.WithString("hunt_group_id", mcp.Required(), mcp.Description("The hunt group ID")),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), hh.handleAddMemberToHuntGroup)

	s.AddTool(mcp.NewTool("remove_member_from_hunt_group",
		mcp.WithDescription("Remove a person from a hunt group"),
		mcp.WithString("hunt_group_id", mcp.Required(), mcp.Description("The hunt group ID")),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), hh.handleRemoveMemberFromHuntGroup)

	return nil
}

func (hh *HuntGroupHandler) handleListHuntGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groups, err := hh.client.ListHuntGroups(ctx, optString(req, "location_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_hunt_groups", err), nil
	}
	return jsonResult(map[string]any{"huntGroups": groups, "count": len(groups)}), nil
}

func (hh *HuntGroupHandler) handleGetHuntGroupDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	huntGroupID, err := req.RequireString("hunt_group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	group, err := hh.client.GetHuntGroupDetails(ctx, huntGroupID)
	if err != nil {
		return errResult("get_hunt_group_details", err), nil
	}
	return jsonResult(group), nil
}

func (hh *HuntGroupHandler) handleCreateHuntGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	group, err := hh.client.CreateHuntGroup(ctx, webex.CreateHuntGroupRequest{
		Name:         name,
		LocationID:   locationID,
		PhoneNumber:  optString(req, "phone_number"),
		Distribution: optString(req, "distribution"),
	})
	if err != nil {
		return errResult("create_hunt_group", err), nil
	}
	return jsonResult(group), nil
}

func (hh *HuntGroupHandler) handleUpdateHuntGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	huntGroupID, err := req.RequireString("hunt_group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields := optObject(req, "fields")
	if len(fields) == 0 {
		return mcp.NewToolResultError("fields is required"), nil
	}
	group, err := hh.client.UpdateHuntGroup(ctx, huntGroupID, fields)
	if err != nil {
		return errResult("update_hunt_group", err), nil
	}
	return jsonResult(group), nil
}

func (hh *HuntGroupHandler) handleDeleteHuntGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	huntGroupID, err := req.RequireString("hunt_group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := hh.client.DeleteHuntGroup(ctx, huntGroupID); err != nil {
		return errResult("delete_hunt_group", err), nil
	}
	return jsonResult(map[string]any{"deleted": true, "huntGroupId": huntGroupID}), nil
}

func (hh *HuntGroupHandler) handleAddMemberToHuntGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	huntGroupID, err := req.RequireString("hunt_group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := hh.client.AddMemberToHuntGroup(ctx, huntGroupID, personID)
	if err != nil {
		return errResult("add_member_to_hunt_group", err), nil
	}
	return jsonResult(out), nil
}

func (hh *HuntGroupHandler) handleRemoveMemberFromHuntGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	huntGroupID, err := req.RequireString("hunt_group_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := hh.client.RemoveMemberFromHuntGroup(ctx, huntGroupID, personID); err != nil {
		return errResult("remove_member_from_hunt_group", err), nil
	}
	return jsonResult(map[string]any{"removed": true, "huntGroupId": huntGroupID, "personId": personID}), nil
}
