package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// LocationHandler exposes location management tools.
type LocationHandler struct {
	client *webex.Client
}

func NewLocationHandler(c *webex.Client) *LocationHandler {
	return &LocationHandler{client: c}
}

// RegisterTools registers the location tools.
func (lh *LocationHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_locations",
		mcp.WithDescription("List locations in the organization"),
		mcp.WithString("org_id", mcp.Description("Organization ID (defaults to the token's org)")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of locations to return (default 100)")),
	), lh.handleListLocations)

	s.AddTool(mcp.NewTool("get_location_details",
		mcp.WithDescription("Get details for a specific location"),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("The location ID")),
	), lh.handleGetLocationDetails)

	s.AddTool(mcp.NewTool("create_location",
		mcp.WithDescription("Create a new location"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Location name")),
		mcp.WithObject("address", mcp.Required(), mcp.Description("Postal address: address1, city, state, postalCode, country")),
		mcp.WithString("org_id", mcp.Description("Organization ID")),
	), lh.handleCreateLocation)

	s.AddTool(mcp.NewTool("update_location",
		mcp.WithDescription("Update fields on an existing location"),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("The location ID")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Fields to update, e.g. name or address")),
	), lh.handleUpdateLocation)

	s.AddTool(mcp.NewTool("delete_location",
		mcp.WithDescription("Delete a location"),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("The location ID")),
	), lh.handleDeleteLocation)

	s.AddTool(mcp.NewTool("get_location_features",
		mcp.WithDescription("Get calling features configured for a location"),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("The location ID")),
	), lh.handleGetLocationFeatures)

	return nil
}

func (lh *LocationHandler) handleListLocations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locations, err := lh.client.ListLocations(ctx, optString(req, "org_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_locations", err), nil
	}
	return jsonResult(map[string]any{"locations": locations, "count": len(locations)}), nil
}

func (lh *LocationHandler) handleGetLocationDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	location, err := lh.client.GetLocationDetails(ctx, locationID)
	if err != nil {
		return errResult("get_location_details", err), nil
	}
	return jsonResult(location), nil
}

func (lh *LocationHandler) handleCreateLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	address := optObject(req, "address")
	if address == nil {
		return mcp.NewToolResultError("address is required"), nil
	}
	location, err := lh.client.CreateLocation(ctx, webex.CreateLocationRequest{
		Name:    name,
		Address: address,
		OrgID:   optString(req, "org_id"),
	})
	if err != nil {
		return errResult("create_location", err), nil
	}
	return jsonResult(location), nil
}

func (lh *LocationHandler) handleUpdateLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields := optObject(req, "fields")
	if len(fields) == 0 {
		return mcp.NewToolResultError("fields is required"), nil
	}
	location, err := lh.client.UpdateLocation(ctx, locationID, fields)
	if err != nil {
		return errResult("update_location", err), nil
	}
	return jsonResult(location), nil
}

func (lh *LocationHandler) handleDeleteLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := lh.client.DeleteLocation(ctx, locationID); err != nil {
		return errResult("delete_location", err), nil
	}
	return jsonResult(map[string]any{"deleted": true, "locationId": locationID}), nil
}

func (lh *LocationHandler) handleGetLocationFeatures(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	features, err := lh.client.GetLocationFeatures(ctx, locationID)
	if err != nil {
		return errResult("get_location_features", err), nil
	}
	return jsonResult(features), nil
}
