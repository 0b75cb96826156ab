//go:build integration
// +build integration

package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lutztalk/mcp-webexcalling/internal/config"
	"github.com/lutztalk/mcp-webexcalling/webex"
)

// TestMCPServerTransports verifies that the MCP server serves tools over
// both in-process (stdio-like) and HTTP transports.
func TestMCPServerTransports(t *testing.T) {
	// Stub Webex backend; tool registration never calls it.
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer apiSrv.Close()

	wx, err := webex.New("test-token",
		webex.WithBaseURL(apiSrv.URL),
		webex.WithAnalyticsBaseURL(apiSrv.URL))
	if err != nil {
		t.Fatalf("failed to create webex client: %v", err)
	}

	cfg := config.NewForTesting()
	mcpServer, err := NewServer(cfg, wx)
	if err != nil {
		t.Fatalf("failed to build MCP server: %v", err)
	}

	t.Run("InProcessTransport", func(t *testing.T) {
		inProcessTransport := transport.NewInProcessTransport(mcpServer)
		if err := inProcessTransport.Start(context.Background()); err != nil {
			t.Fatalf("failed to start in-process transport: %v", err)
		}
		defer inProcessTransport.Close()

		mcpClient := client.NewClient(inProcessTransport)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := mcpClient.Initialize(ctx, mcp.InitializeRequest{
			Params: mcp.InitializeParams{
				ProtocolVersion: "2024-11-05",
				Capabilities:    mcp.ClientCapabilities{},
				ClientInfo: mcp.Implementation{
					Name:    "test-client",
					Version: "1.0.0",
				},
			},
		})
		if err != nil {
			t.Fatalf("failed to initialize MCP client: %v", err)
		}

		tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
		if err != nil {
			t.Fatalf("tools/list failed over in-process transport: %v", err)
		}
		if len(tools.Tools) == 0 {
			t.Fatal("expected at least one tool, got none")
		}

		toolNames := make(map[string]bool)
		for _, tool := range tools.Tools {
			toolNames[tool.Name] = true
		}
		expectedTools := []string{
			"get_my_info",
			"list_users",
			"get_call_detail_records",
			"get_pstn_minutes",
			"lookup_area_code",
		}
		for _, expected := range expectedTools {
			if !toolNames[expected] {
				t.Errorf("expected tool %q not found in tools list", expected)
			}
		}

		t.Logf("in-process transport: found %d tools", len(tools.Tools))
	})

	t.Run("HTTPTransport", func(t *testing.T) {
		streamSrv := server.NewStreamableHTTPServer(
			mcpServer,
			server.WithEndpointPath("/mcp"),
			server.WithHeartbeatInterval(30*time.Second),
		)

		httpSrv := httptest.NewServer(streamSrv)
		defer httpSrv.Close()

		httpTransport, err := transport.NewStreamableHTTP(httpSrv.URL + "/mcp")
		if err != nil {
			t.Fatalf("failed to create HTTP transport: %v", err)
		}
		if err := httpTransport.Start(context.Background()); err != nil {
			t.Fatalf("failed to start HTTP transport: %v", err)
		}
		defer httpTransport.Close()

		mcpClient := client.NewClient(httpTransport)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, initErr := mcpClient.Initialize(ctx, mcp.InitializeRequest{
			Params: mcp.InitializeParams{
				ProtocolVersion: "2024-11-05",
				Capabilities:    mcp.ClientCapabilities{},
				ClientInfo: mcp.Implementation{
					Name:    "test-client",
					Version: "1.0.0",
				},
			},
		})
		if initErr != nil {
			t.Fatalf("failed to initialize MCP client: %v", initErr)
		}

		tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
		if err != nil {
			t.Fatalf("tools/list failed over HTTP transport: %v", err)
		}
		if len(tools.Tools) == 0 {
			t.Fatal("expected at least one tool, got none")
		}

		t.Logf("HTTP transport: found %d tools", len(tools.Tools))
	})
}
