package mcp

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("nil search service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{Catalog: &mockCatalogService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingSearchService)
	})

	t.Run("search only is valid", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Catalog: &mockCatalogService{}}
		assert.NoError(t, ports.Validate())
	})
}

func strPtr(s string) *string { return &s }

// testCatalog holds three reports and one unrelated document.
func testCatalog() *domain.Catalog {
	b := domain.NewCatalogBuilder()
	b.Add(domain.Document{
		Domain:      "archive.example.gov",
		Key:         "report-2019.pdf",
		Description: "Annual Report 2019",
		Date:        "2019-06-01",
		Region:      "US",
		Tags:        []string{"finance"},
		Link:        strPtr("https://web.archive.org/report-2019"),
	})
	b.Add(domain.Document{
		Domain:      "archive.example.gov",
		Key:         "report-2020.pdf",
		Description: "Annual Report 2020",
		Date:        "2020-06-01",
		Region:      "US",
	})
	b.Add(domain.Document{
		Domain:      "data.example.eu",
		Key:         "summary.html",
		Description: "Report summary",
		Date:        "2020",
		Region:      "EU",
	})
	b.Add(domain.Document{
		Domain:      "data.example.eu",
		Key:         "readme.txt",
		Description: "Read me first",
	})
	return b.Build()
}

// connect starts a server over in-memory transports and returns a connected
// client session.
func connect(t *testing.T, ports *Ports) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server, err := NewServer(ports)
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func catalogPorts() *Ports {
	catalog := testCatalog()
	return &Ports{
		Search:  services.NewSearchService(catalog),
		Catalog: services.NewCatalogService(catalog),
	}
}

func TestServer_ListTools(t *testing.T) {
	session := connect(t, catalogPorts())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Tools, 1)
	assert.Equal(t, SearchToolName, res.Tools[0].Name)
	assert.NotNil(t, res.Tools[0].InputSchema)
	assert.NotNil(t, res.Tools[0].OutputSchema)
}

func TestServer_Handler(t *testing.T) {
	server, err := NewServer(catalogPorts())
	require.NoError(t, err)

	httpServer := httptest.NewServer(server.Handler())
	defer httpServer.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "http-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: httpServer.URL}, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      SearchToolName,
		Arguments: map[string]any{"query": "report"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
}
