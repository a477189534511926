package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/libsearch/internal/adapters/driving/rest"
)

// mcpPath is where the MCP streamable HTTP endpoint is mounted.
const mcpPath = "/mcp"

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP search API",
	Long: `Serves the search engine over HTTP:

  GET  /api/search?term=&domain=&tag=&year=&region=   all matches as a JSON array
  GET  /api/catalog                                   per-domain document counts
  GET  /api/documents/{domain}/{key}                  one catalog record
  GET  /health                                        liveness
  POST /mcp                                           MCP streamable HTTP endpoint

The listen address, rate limit and CORS come from the server.* settings;
--addr overrides server.addr.`,
	Args:        cobra.NoArgs,
	Annotations: needsCatalog(),
	RunE:        runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func newRESTServer(addr string) (*rest.Server, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if addr == "" {
		addr = settings.Server.Addr
	}

	server, err := rest.NewServer(&rest.Ports{
		Search:  searchService,
		Catalog: catalogService,
	}, rest.Options{
		Addr:      addr,
		RateLimit: settings.Server.RateLimit,
		RateBurst: settings.Server.RateBurst,
		CORS:      settings.Server.CORS,
		Version:   version,
	})
	if err != nil {
		return nil, err
	}

	mcpServer, err := newMCPServer()
	if err != nil {
		return nil, err
	}
	server.Mount(mcpPath, mcpServer.Handler())

	return server, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := newRESTServer(serveAddr)
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}
