package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lutztalk/mcp-webexcalling/mcp"
)

var rootCmd = &cobra.Command{
	Use:   "webex-mcp-server",
	Short: "MCP bridge for the Webex Calling API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcp.RunMCPServer()
	},
}

func main() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio or HTTP, autodetected)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.RunMCPServer()
		},
	}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newLoginCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
