package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// UserHandler exposes person management and per-user calling feature tools.
type UserHandler struct {
	client *webex.Client
}

func NewUserHandler(c *webex.Client) *UserHandler {
	return &UserHandler{client: c}
}

// RegisterTools registers the user tools.
func (uh *UserHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_users",
		mcp.WithDescription("List people in the organization"),
		mcp.WithString("org_id", mcp.Description("Organization ID")),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of people to return (default 100)")),
	), uh.handleListUsers)

	s.AddTool(mcp.NewTool("get_user_details",
		mcp.WithDescription("Get details for a specific person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), uh.handleGetUserDetails)

	s.AddTool(mcp.NewTool("get_user_by_email",
		mcp.WithDescription("Find a person by email address"),
		mcp.WithString("email", mcp.Required(), mcp.Description("Email address to look up")),
	), uh.handleGetUserByEmail)

	s.AddTool(mcp.NewTool("search_users",
		mcp.WithDescription("Search people by display name or email fragment"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Name or email fragment")),
		mcp.WithString("org_id", mcp.Description("Organization ID")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of matches (default 100)")),
	), uh.handleSearchUsers)

	s.AddTool(mcp.NewTool("create_user",
		mcp.WithDescription("Create a new person"),
		mcp.WithString("email", mcp.Required(), mcp.Description("Primary email address")),
		mcp.WithString("display_name", mcp.Required(), mcp.Description("Display name")),
		mcp.WithString("first_name", mcp.Description("First name")),
		mcp.WithString("last_name", mcp.Description("Last name")),
		mcp.WithString("org_id", mcp.Description("Organization ID")),
		mcp.WithString("location_id", mcp.Description("Calling location for the person")),
	), uh.handleCreateUser)

	s.AddTool(mcp.NewTool("update_user",
		mcp.WithDescription("Update fields on an existing person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Fields to update, e.g. displayName")),
	), uh.handleUpdateUser)

	s.AddTool(mcp.NewTool("delete_user",
		mcp.WithDescription("Delete a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), uh.handleDeleteUser)

	s.AddTool(mcp.NewTool("get_user_calling_settings",
		mcp.WithDescription("Get Webex Calling numbers and settings for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), uh.handleGetUserCallingSettings)

	s.AddTool(mcp.NewTool("update_user_extension",
		mcp.WithDescription("Change a person's extension"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithString("extension", mcp.Required(), mcp.Description("The new extension")),
	), uh.handleUpdateUserExtension)

	s.AddTool(mcp.NewTool("update_user_calling_features",
		mcp.WithDescription("Update calling feature toggles for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithObject("features", mcp.Required(), mcp.Description("Feature settings to apply")),
	), uh.handleUpdateUserCallingFeatures)

	s.AddTool(mcp.NewTool("get_call_forwarding_settings",
		mcp.WithDescription("Get call forwarding configuration for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), uh.handleGetCallForwarding)

	s.AddTool(mcp.NewTool("update_call_forwarding_settings",
		mcp.WithDescription("Update call forwarding configuration for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithObject("settings", mcp.Required(), mcp.Description("Call forwarding settings to apply")),
	), uh.handleUpdateCallForwarding)

	s.AddTool(mcp.NewTool("get_simultaneous_ring_settings",
		mcp.WithDescription("Get simultaneous ring configuration for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), uh.handleGetSimultaneousRing)

	s.AddTool(mcp.NewTool("update_simultaneous_ring_settings",
		mcp.WithDescription("Update simultaneous ring configuration for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithObject("settings", mcp.Required(), mcp.Description("Simultaneous ring settings to apply")),
	), uh.handleUpdateSimultaneousRing)

	s.AddTool(mcp.NewTool("get_call_park_settings",
		mcp.WithDescription("Get call park configuration for a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), uh.handleGetCallPark)

	return nil
}

func (uh *UserHandler) handleListUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	users, err := uh.client.ListUsers(ctx, optString(req, "org_id"), optString(req, "location_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_users", err), nil
	}
	return jsonResult(map[string]any{"users": users, "count": len(users)}), nil
}

func (uh *UserHandler) handleGetUserDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	user, err := uh.client.GetUserDetails(ctx, personID)
	if err != nil {
		return errResult("get_user_details", err), nil
	}
	return jsonResult(user), nil
}

func (uh *UserHandler) handleGetUserByEmail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	user, err := uh.client.GetUserByEmail(ctx, email)
	if err != nil {
		return errResult("get_user_by_email", err), nil
	}
	if user == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no user found with email %s", email)), nil
	}
	return jsonResult(user), nil
}

func (uh *UserHandler) handleSearchUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	users, err := uh.client.SearchUsers(ctx, query, optString(req, "org_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("search_users", err), nil
	}
	return jsonResult(map[string]any{"users": users, "count": len(users)}), nil
}

func (uh *UserHandler) handleCreateUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	displayName, err := req.RequireString("display_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	user, err := uh.client.CreateUser(ctx, webex.CreateUserRequest{
		Emails:      []string{email},
		DisplayName: displayName,
		FirstName:   optString(req, "first_name"),
		LastName:    optString(req, "last_name"),
		OrgID:       optString(req, "org_id"),
		LocationID:  optString(req, "location_id"),
	})
	if err != nil {
		return errResult("create_user", err), nil
	}
	return jsonResult(user), nil
}

func (uh *UserHandler) handleUpdateUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields := optObject(req, "fields")
	if len(fields) == 0 {
		return mcp.NewToolResultError("fields is required"), nil
	}
	user, err := uh.client.UpdateUser(ctx, personID, fields)
	if err != nil {
		return errResult("update_user", err), nil
	}
	return jsonResult(user), nil
}

func (uh *UserHandler) handleDeleteUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := uh.client.DeleteUser(ctx, personID); err != nil {
		return errResult("delete_user", err), nil
	}
	return jsonResult(map[string]any{"deleted": true, "personId": personID}), nil
}

func (uh *UserHandler) handleGetUserCallingSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings, err := uh.client.GetUserCallingSettings(ctx, personID)
	if err != nil {
		return errResult("get_user_calling_settings", err), nil
	}
	return jsonResult(settings), nil
}

func (uh *UserHandler) handleUpdateUserExtension(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	extension, err := req.RequireString("extension")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := uh.client.UpdateUserExtension(ctx, personID, map[string]any{"extension": extension})
	if err != nil {
		return errResult("update_user_extension", err), nil
	}
	return jsonResult(out), nil
}

func (uh *UserHandler) handleUpdateUserCallingFeatures(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	features := optObject(req, "features")
	if len(features) == 0 {
		return mcp.NewToolResultError("features is required"), nil
	}
	out, err := uh.client.UpdateUserCallingFeatures(ctx, personID, features)
	if err != nil {
		return errResult("update_user_calling_features", err), nil
	}
	return jsonResult(out), nil
}

func (uh *UserHandler) handleGetCallForwarding(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings, err := uh.client.GetCallForwardingSettings(ctx, personID)
	if err != nil {
		return errResult("get_call_forwarding_settings", err), nil
	}
	return jsonResult(settings), nil
}

func (uh *UserHandler) handleUpdateCallForwarding(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings := optObject(req, "settings")
	if len(settings) == 0 {
		return mcp.NewToolResultError("settings is required"), nil
	}
	out, err := uh.client.UpdateCallForwardingSettings(ctx, personID, settings)
	if err != nil {
		return errResult("update_call_forwarding_settings", err), nil
	}
	return jsonResult(out), nil
}

func (uh *UserHandler) handleGetSimultaneousRing(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings, err := uh.client.GetSimultaneousRingSettings(ctx, personID)
	if err != nil {
		return errResult("get_simultaneous_ring_settings", err), nil
	}
	return jsonResult(settings), nil
}

func (uh *UserHandler) handleGetCallPark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings, err := uh.client.GetCallParkSettings(ctx, personID)
	if err != nil {
		return errResult("get_call_park_settings", err), nil
	}
	return jsonResult(settings), nil
}

func (uh *UserHandler) handleUpdateSimultaneousRing(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	settings := optObject(req, "settings")
	if len(settings) == 0 {
		return mcp.NewToolResultError("settings is required"), nil
	}
	out, err := uh.client.UpdateSimultaneousRingSettings(ctx, personID, settings)
	if err != nil {
		return errResult("update_simultaneous_ring_settings", err), nil
	}
	return jsonResult(out), nil
}
