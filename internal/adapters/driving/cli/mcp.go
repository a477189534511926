package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/libsearch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI agent integration.

The server exposes the search_library tool and the library://catalog and
library://documents/{domain}/{key} resources.

By default, the server communicates over stdio using JSON-RPC. Logs are
written to stderr so they never interleave with protocol messages.

Use --port to start an HTTP server instead (streamable HTTP transport).

Examples:
  # Stdio mode (default)
  libsearch mcp serve --catalog catalog.json

  # HTTP mode (for MCP Inspector, remote access)
  libsearch mcp serve --port 8080

Agent configuration:
  {
    "mcpServers": {
      "libsearch": {
        "command": "/path/to/libsearch",
        "args": ["mcp", "serve", "--catalog", "/path/to/catalog.json"]
      }
    }
  }`,
	Annotations: needsCatalog(),
	RunE:        runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer() (*mcp.Server, error) {
	return mcp.NewServer(&mcp.Ports{
		Search:  searchService,
		Catalog: catalogService,
	})
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if port > 0 {
		return server.RunHTTP(cmd.Context(), fmt.Sprintf(":%d", port))
	}

	return server.Run(cmd.Context())
}
