package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// OrgHandler exposes organization and identity tools.
type OrgHandler struct {
	client *webex.Client
}

func NewOrgHandler(c *webex.Client) *OrgHandler {
	return &OrgHandler{client: c}
}

// RegisterTools registers the organization tools.
func (oh *OrgHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("get_organization_info",
		mcp.WithDescription("Get details about the Webex organization the token belongs to"),
	), oh.handleGetOrganizationInfo)

	s.AddTool(mcp.NewTool("get_my_info",
		mcp.WithDescription("Get the profile of the authenticated user (people/me)"),
	), oh.handleGetMyInfo)

	return nil
}

func (oh *OrgHandler) handleGetOrganizationInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	org, err := oh.client.GetOrganizationInfo(ctx)
	if err != nil {
		return errResult("get_organization_info", err), nil
	}
	return jsonResult(org), nil
}

func (oh *OrgHandler) handleGetMyInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	me, err := oh.client.GetMyInfo(ctx)
	if err != nil {
		return errResult("get_my_info", err), nil
	}
	return jsonResult(me), nil
}
