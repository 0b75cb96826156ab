// Package handlers wires Webex Calling operations into MCP tools.
package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult renders any payload as indented JSON tool output.
func jsonResult(payload any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

// errResult wraps an operation error as a tool error result.
func errResult(op string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", op, err))
}

// optString reads an optional string argument, empty when absent.
func optString(req mcp.CallToolRequest, key string) string {
	if v, ok := req.GetArguments()[key].(string); ok {
		return v
	}
	return ""
}

// optInt reads an optional numeric argument. JSON numbers arrive as float64.
func optInt(req mcp.CallToolRequest, key string, def int) int {
	if v, ok := req.GetArguments()[key].(float64); ok {
		return int(v)
	}
	return def
}

// optBool reads an optional boolean argument.
func optBool(req mcp.CallToolRequest, key string, def bool) bool {
	if v, ok := req.GetArguments()[key].(bool); ok {
		return v
	}
	return def
}

// optObject reads an optional object argument, nil when absent.
func optObject(req mcp.CallToolRequest, key string) map[string]any {
	if v, ok := req.GetArguments()[key].(map[string]any); ok {
		return v
	}
	return nil
}
