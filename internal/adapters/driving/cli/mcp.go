package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emwalker/lenrmc/internal/adapters/driving/mcp"
)

var mcpHTTP string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --http to serve over HTTP instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  lenrmc mcp

  # HTTP mode (for MCP Inspector, remote access)
  lenrmc mcp --http :8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "lenrmc": {
        "command": "/path/to/lenrmc",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTP, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Enumeration: enumerationService,
		Decay:       decayService,
		Nuclides:    nuclideCatalog,
		Studies:     studiesService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if mcpHTTP != "" {
		display := mcpHTTP
		if strings.HasPrefix(display, ":") {
			display = "localhost" + display
		}
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", display)
		return server.RunHTTP(cmd.Context(), mcpHTTP)
	}

	return server.Run(cmd.Context())
}
