package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/webex"
)

// QueueHandler exposes call queue management tools.
type QueueHandler struct {
	client *webex.Client
}

func NewQueueHandler(c *webex.Client) *QueueHandler {
	return &QueueHandler{client: c}
}

// RegisterTools registers the call queue tools.
func (qh *QueueHandler) RegisterTools(s *server.MCPServer) error {
	s.AddTool(mcp.NewTool("list_call_queues",
		mcp.WithDescription("List call queues"),
		mcp.WithString("location_id", mcp.Description("Filter to a location")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of queues to return (default 100)")),
	), qh.handleListCallQueues)

	s.AddTool(mcp.NewTool("get_call_queue_details",
		mcp.WithDescription("Get details for a call queue"),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("The call queue ID")),
	), qh.handleGetCallQueueDetails)

	s.AddTool(mcp.NewTool("create_call_queue",
		mcp.WithDescription("Create a new call queue"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Queue name")),
		mcp.WithString("location_id", mcp.Required(), mcp.Description("Location the queue belongs to")),
		mcp.WithString("phone_number", mcp.Description("Queue phone number")),
		mcp.WithObject("call_policies", mcp.Description("Queue routing policies")),
	), qh.handleCreateCallQueue)

	s.AddTool(mcp.NewTool("update_call_queue",
		mcp.WithDescription("Update fields on a call queue"),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("The call queue ID")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Fields to update")),
	), qh.handleUpdateCallQueue)

	s.AddTool(mcp.NewTool("delete_call_queue",
		mcp.WithDescription("Delete a call queue"),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("The call queue ID")),
	), qh.handleDeleteCallQueue)

	s.AddTool(mcp.NewTool("list_queue_agents",
		mcp.WithDescription("List agents assigned to a call queue"),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("The call queue ID")),
	), qh.handleListQueueAgents)

	s.AddTool(mcp.NewTool("add_agent_to_queue",
		mcp.WithDescription("Add a person as an agent on a call queue"),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("The call queue ID")),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
		mcp.WithNumber("skill_level", mcp.Description("Agent skill level (default 1)")),
	), qh.handleAddAgentToQueue)

	s.AddTool(mcp.NewTool("remove_agent_from_queue",
		mcp.WithDescription("Remove an agent from a call queue"),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("The call queue ID")),
		mcp.WithString("person_id", mcp.Required(), mcp.Description("The person ID")),
	), qh.handleRemoveAgentFromQueue)

	return nil
}

func (qh *QueueHandler) handleListCallQueues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queues, err := qh.client.ListCallQueues(ctx, optString(req, "location_id"), optInt(req, "max_results", 0))
	if err != nil {
		return errResult("list_call_queues", err), nil
	}
	return jsonResult(map[string]any{"queues": queues, "count": len(queues)}), nil
}

func (qh *QueueHandler) handleGetCallQueueDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queueID, err := req.RequireString("queue_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	queue, err := qh.client.GetCallQueueDetails(ctx, queueID)
	if err != nil {
		return errResult("get_call_queue_details", err), nil
	}
	return jsonResult(queue), nil
}

func (qh *QueueHandler) handleCreateCallQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	locationID, err := req.RequireString("location_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	queue, err := qh.client.CreateCallQueue(ctx, webex.CreateCallQueueRequest{
		Name:         name,
		LocationID:   locationID,
		PhoneNumber:  optString(req, "phone_number"),
		CallPolicies: optObject(req, "call_policies"),
	})
	if err != nil {
		return errResult("create_call_queue", err), nil
	}
	return jsonResult(queue), nil
}

func (qh *QueueHandler) handleUpdateCallQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queueID, err := req.RequireString("queue_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields := optObject(req, "fields")
	if len(fields) == 0 {
		return mcp.NewToolResultError("fields is required"), nil
	}
	queue, err := qh.client.UpdateCallQueue(ctx, queueID, fields)
	if err != nil {
		return errResult("update_call_queue", err), nil
	}
	return jsonResult(queue), nil
}

func (qh *QueueHandler) handleDeleteCallQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queueID, err := req.RequireString("queue_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := qh.client.DeleteCallQueue(ctx, queueID); err != nil {
		return errResult("delete_call_queue", err), nil
	}
	return jsonResult(map[string]any{"deleted": true, "queueId": queueID}), nil
}

func (qh *QueueHandler) handleListQueueAgents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queueID, err := req.RequireString("queue_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	agents, err := qh.client.ListQueueAgents(ctx, queueID)
	if err != nil {
		return errResult("list_queue_agents", err), nil
	}
	return jsonResult(map[string]any{"agents": agents, "count": len(agents)}), nil
}

func (qh *QueueHandler) handleAddAgentToQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queueID, err := req.RequireString("queue_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := qh.client.AddAgentToQueue(ctx, queueID, personID, optInt(req, "skill_level", 1))
	if err != nil {
		return errResult("add_agent_to_queue", err), nil
	}
	return jsonResult(out), nil
}

func (qh *QueueHandler) handleRemoveAgentFromQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queueID, err := req.RequireString("queue_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	personID, err := req.RequireString("person_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := qh.client.RemoveAgentFromQueue(ctx, queueID, personID); err != nil {
		return errResult("remove_agent_from_queue", err), nil
	}
	return jsonResult(map[string]any{"removed": true, "queueId": queueID, "personId": personID}), nil
}
