package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
	"github.com/lutztalk/mcp-webexcalling/webex/areacode"
)

// NumberHandler exposes phone number management tools.
type NumberHandler struct {
	client *webex.Client
}

func NewNumberHandler(c *webex.Client) *NumberHandler {
	return &NumberHandler{client: c}
}

// RegisterTools registers the phone number tools.
func (nh *NumberHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_phone_numbers",
		mcp.WithDescription("List phone numbers in the organization"),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithString("org_id", mcp.Description("Organization ID")),
		mcp.WithString("number", mcp.Description("Filter by number, full or partial")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of numbers to return (default 100)")),
	), nh.handleListPhoneNumbers)

	s.AddTool(mcp.NewTool("get_phone_number_details",
		mcp.WithDescription("Get details for a phone number"),
		mcp.WithString("number_id", mcp.Required(), mcp.Description("The phone number ID")),
	), nh.handleGetPhoneNumberDetails)

	s.AddTool(mcp.NewTool("assign_phone_number_to_user",
		mcp.WithDescription("Assign a phone number to a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithString("number_id", mcp.Required(), mcp.Description("The phone number ID")),
	), nh.handleAssignPhoneNumberToUser)

	s.AddTool(mcp.NewTool("assign_phone_number_to_location",
		mcp.WithDescription("Assign a phone number to a location"),
		mcp.WithString("number_id", mcp.Required(), mcp.Description("The phone number ID")),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("The location ID")),
	), nh.handleAssignPhoneNumberToLocation)

	s.AddTool(mcp.NewTool("unassign_phone_number",
		mcp.WithDescription("Remove a phone number assignment"),
		mcp.WithString("number_id", mcp.Required(), mcp.Description("The phone number ID")),
	), nh.handleUnassignPhoneNumber)

	s.AddTool(mcp.NewTool("search_available_phone_numbers",
		mcp.WithDescription("Search numbers available to order for a location"),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("The location ID")),
		mcp.WithString("area_code", mcp.Description("Restrict to an area code")),
		mcp.WithString("state", mcp.Description("Restrict to a US state")),
		mcp.WithString("country", mcp.Description("Two-letter country code, default US")),
	), nh.handleSearchAvailablePhoneNumbers)

	s.AddTool(mcp.NewTool("lookup_area_code",
		mcp.WithDescription("Look up NANP area code geography: resolve an area code or phone number to its US state, or list a state's area codes"),
		mcp.WithString("area_code", mcp.Description("Three-digit area code to resolve")),
		mcp.WithString("phone_number", mcp.Description("Phone number to extract and resolve the area code from")),
		mcp.WithString("state", mcp.Description("US state name or abbreviation to list area codes for")),
	), nh.handleLookupAreaCode)

	return nil
}

func (nh *NumberHandler) handleListPhoneNumbers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numbers, err := nh.client.ListPhoneNumbers(ctx, optString(req, "location_id"), optString(req, "org_id"), optString(req, "number"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_phone_numbers", err), nil
	}
	return jsonResult(map[string]any{"numbers": numbers, "count": len(numbers)}), nil
}

func (nh *NumberHandler) handleGetPhoneNumberDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numberID, err := req.RequireString("number_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	number, err := nh.client.GetPhoneNumberDetails(ctx, numberID)
	if err != nil {
		return errResult("get_phone_number_details", err), nil
	}
	return jsonResult(number), nil
}

func (nh *NumberHandler) handleAssignPhoneNumberToUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	numberID, err := req.RequireString("number_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := nh.client.AssignPhoneNumberToUser(ctx, personID, numberID)
	if err != nil {
		return errResult("assign_phone_number_to_user", err), nil
	}
	return jsonResult(out), nil
}

func (nh *NumberHandler) handleAssignPhoneNumberToLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numberID, err := req.RequireString("number_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := nh.client.AssignPhoneNumberToLocation(ctx, numberID, locationID)
	if err != nil {
		return errResult("assign_phone_number_to_location", err), nil
	}
	return jsonResult(out), nil
}

func (nh *NumberHandler) handleUnassignPhoneNumber(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numberID, err := req.RequireString("number_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := nh.client.UnassignPhoneNumber(ctx, numberID); err != nil {
		return errResult("unassign_phone_number", err), nil
	}
	return jsonResult(map[string]any{"unassigned": true, "numberId": numberID}), nil
}

func (nh *NumberHandler) handleSearchAvailablePhoneNumbers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	numbers, err := nh.client.SearchAvailablePhoneNumbers(ctx, locationID, optString(req, "area_code"), optString(req, "state"), optString(req, "country"))
	if err != nil {
		return errResult("search_available_phone_numbers", err), nil
	}
	return jsonResult(map[string]any{"numbers": numbers, "count": len(numbers)}), nil
}

func (nh *NumberHandler) handleLookupAreaCode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := optString(req, "area_code")
	phone := optString(req, "phone_number")
	state := optString(req, "state")

	switch {
	case code != "":
		st, ok := areacode.StateForCode(code)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown area code %q", code)), nil
		}
		return jsonResult(map[string]any{"areaCode": code, "state": st}), nil

	case phone != "":
		extracted, ok := areacode.Extract(phone)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("could not extract an area code from %q", phone)), nil
		}
		st, known := areacode.StateForCode(extracted)
		result := map[string]any{"phoneNumber": phone, "areaCode": extracted}
		if known {
			result["state"] = st
		}
		return jsonResult(result), nil

	case state != "":
		codes := areacode.CodesForState(state)
		if len(codes) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("unknown state %q", state)), nil
		}
		normalized, _ := areacode.NormalizeState(state)
		return jsonResult(map[string]any{"state": normalized, "areaCodes": codes}), nil

	default:
		return mcp.NewToolResultError("one of area_code, phone_number, or state is required"), nil
	}
}
