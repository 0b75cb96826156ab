package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// DeviceHandler exposes device management tools.
type DeviceHandler struct {
	client *webex.Client
}

func NewDeviceHandler(c *webex.Client) *DeviceHandler {
	return &DeviceHandler{client: c}
}

// RegisterTools registers the device tools.
func (dh *DeviceHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_devices",
		mcp.WithDescription("List devices in the organization"),
		mcp.WithString("person_id", mcp.Description("Filter to devices owned by a person")),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of devices to return (default 100)")),
	), dh.handleListDevices)

	s.AddTool(mcp.NewTool("get_device_details",
		mcp.WithDescription("Get details for a device"),
		mcp.WithString("device_id", mcp.Required(), mcp.Description("The device ID")),
	), dh.handleGetDeviceDetails)

	s.AddTool(mcp.NewTool("associate_device_to_user",
		mcp.WithDescription("Associate a device with a person"),
		mcp.WithString("device_id", mcp.Required(), mcp.Description("The device ID")),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), dh.handleAssociateDeviceToUser)

	s.AddTool(mcp.NewTool("unassociate_device",
		mcp.WithDescription("Remove a device's user association"),
		mcp.WithString("device_id", mcp.Required(), mcp.Description("The device ID")),
	), dh.handleUnassociateDevice)

	s.AddTool(mcp.NewTool("provision_device",
		mcp.WithDescription("Generate an activation code to provision a device"),
		mcp.WithString("device_id", mcp.Required(), mcp.Description("The device ID")),
		mcp.WithString("person_id", mcp.Description("Person to provision the device for")),
		mcp.WithString("location_id", mcp.Description("Location to provision the device in")),
	), dh.handleProvisionDevice)

	s.AddTool(mcp.NewTool("activate_device",
		mcp.WithDescription("Activate a device"),
		mcp.WithString("device_id", mcp.Required(), mcp.Description("The device ID")),
	), dh.handleActivateDevice)

	s.AddTool(mcp.NewTool("deactivate_device",
		mcp.WithDescription("Deactivate a device"),
		mcp.WithString("device_id", mcp.Required(), mcp.Description("The device ID")),
	), dh.handleDeactivateDevice)

	s.AddTool(mcp.NewTool("get_device_associations",
		mcp.WithDescription("Get the users and workspaces associated with a device"),
		mcp.WithString("device_id", mcp.Required(), mcp.Description("The device ID")),
	), dh.handleGetDeviceAssociations)

	s.AddTool(mcp.NewTool("list_user_devices",
		mcp.WithDescription("List devices assigned to a person"),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), dh.handleListUserDevices)

	return nil
}

func (dh *DeviceHandler) handleListDevices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := dh.client.ListDevices(ctx, optString(req, "person_id"), optString(req, "location_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_devices", err), nil
	}
	return jsonResult(map[string]any{"devices": devices, "count": len(devices)}), nil
}

func (dh *DeviceHandler) handleGetDeviceDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := req.RequireString("device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	device, err := dh.client.GetDeviceDetails(ctx, deviceID)
	if err != nil {
		return errResult("get_device_details", err), nil
	}
	return jsonResult(device), nil
}

func (dh *DeviceHandler) handleAssociateDeviceToUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := req.RequireString("device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := dh.client.AssociateDeviceToUser(ctx, deviceID, personID)
	if err != nil {
		return errResult("associate_device_to_user", err), nil
	}
	return jsonResult(out), nil
}

func (dh *DeviceHandler) handleUnassociateDevice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := req.RequireString("device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := dh.client.UnassociateDevice(ctx, deviceID); err != nil {
		return errResult("unassociate_device", err), nil
	}
	return jsonResult(map[string]any{"unassociated": true, "deviceId": deviceID}), nil
}

func (dh *DeviceHandler) handleProvisionDevice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := req.RequireString("device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := dh.client.ProvisionDevice(ctx, deviceID, optString(req, "person_id"), optString(req, "location_id"))
	if err != nil {
		return errResult("provision_device", err), nil
	}
	return jsonResult(out), nil
}

func (dh *DeviceHandler) handleActivateDevice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := req.RequireString("device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := dh.client.ActivateDevice(ctx, deviceID)
	if err != nil {
		return errResult("activate_device", err), nil
	}
	return jsonResult(out), nil
}

func (dh *DeviceHandler) handleDeactivateDevice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := req.RequireString("device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := dh.client.DeactivateDevice(ctx, deviceID)
	if err != nil {
		return errResult("deactivate_device", err), nil
	}
	return jsonResult(out), nil
}

func (dh *DeviceHandler) handleGetDeviceAssociations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := req.RequireString("device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := dh.client.GetDeviceAssociations(ctx, deviceID)
	if err != nil {
		return errResult("get_device_associations", err), nil
	}
	return jsonResult(out), nil
}

func (dh *DeviceHandler) handleListUserDevices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	devices, err := dh.client.ListUserDevices(ctx, personID)
	if err != nil {
		return errResult("list_user_devices", err), nil
	}
	return jsonResult(map[string]any{"devices": devices, "count": len(devices)}), nil
}
