package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// LicenseHandler exposes license management tools.
type LicenseHandler struct {
	client *webex.Client
}

func NewLicenseHandler(c *webex.Client) *LicenseHandler {
	return &LicenseHandler{client: c}
}

// RegisterTools registers the license tools.
func (lh *LicenseHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_licenses",
		mcp.WithDescription("List licenses in the organization"),
		mcp.WithString("org_id", mcp.Description("Organization ID")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of licenses to return (default 100)")),
	), lh.handleListLicenses)

	s.AddTool(mcp.NewTool("get_license_details",
		mcp.WithDescription("Get details for a license"),
		mcp.WithString("license_id", mcp.Required(), mcp.Description("The license ID")),
	), lh.handleGetLicenseDetails)

	s.AddTool(mcp.NewTool("list_user_licenses",
		mcp.WithDescription("List licenses assigned to a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), lh.handleListUserLicenses)

	s.AddTool(mcp.NewTool("assign_license_to_user",
		mcp.WithDescription("Assign a license to a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithString("license_id", mcp.Required(), mcp.Description("The license ID")),
	), lh.handleAssignLicenseToUser)

	s.AddTool(mcp.NewTool("remove_license_from_user",
		mcp.WithDescription("Remove a license from a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithString("license_id", mcp.Required(), mcp.Description("The license ID")),
	), lh.handleRemoveLicenseFromUser)

	return nil
}

func (lh *LicenseHandler) handleListLicenses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	licenses, err := lh.client.ListLicenses(ctx, optString(req, "org_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_licenses", err), nil
	}
	return jsonResult(map[string]any{"licenses": licenses, "count": len(licenses)}), nil
}

func (lh *LicenseHandler) handleGetLicenseDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	licenseID, err := req.RequireString("license_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	license, err := lh.client.GetLicenseDetails(ctx, licenseID)
	if err != nil {
		return errResult("get_license_details", err), nil
	}
	return jsonResult(license), nil
}

func (lh *LicenseHandler) handleListUserLicenses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	licenses, err := lh.client.ListUserLicenses(ctx, personID)
	if err != nil {
		return errResult("list_user_licenses", err), nil
	}
	return jsonResult(map[string]any{"licenses": licenses, "count": len(licenses)}), nil
}

func (lh *LicenseHandler) handleAssignLicenseToUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	licenseID, err := req.RequireString("license_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := lh.client.AssignLicenseToUser(ctx, personID, licenseID)
	if err != nil {
		return errResult("assign_license_to_user", err), nil
	}
	return jsonResult(out), nil
}

func (lh *LicenseHandler) handleRemoveLicenseFromUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	licenseID, err := req.RequireString("license_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := lh.client.RemoveLicenseFromUser(ctx, personID, licenseID)
	if err != nil {
		return errResult("remove_license_from_user", err), nil
	}
	return jsonResult(out), nil
}
