package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

func readResource(t *testing.T, session *mcp.ClientSession, uri string) (string, error) {
	t.Helper()

	res, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: uri})
	if err != nil {
		return "", err
	}
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)
	return res.Contents[0].Text, nil
}

func TestCatalogResource(t *testing.T) {
	session := connect(t, catalogPorts())

	text, err := readResource(t, session, CatalogURI)
	require.NoError(t, err)

	var stats []domain.DomainStats
	require.NoError(t, json.Unmarshal([]byte(text), &stats))
	assert.Equal(t, []domain.DomainStats{
		{Name: "archive.example.gov", Documents: 2},
		{Name: "data.example.eu", Documents: 2},
	}, stats)
}

func TestCatalogResource_NoCatalogService(t *testing.T) {
	session := connect(t, &Ports{Search: &mockSearchService{}})

	text, err := readResource(t, session, CatalogURI)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", text)
}

func TestCatalogResource_Error(t *testing.T) {
	server, err := NewServer(&Ports{
		Search:  &mockSearchService{},
		Catalog: &mockCatalogService{err: errors.New("boom")},
	})
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: CatalogURI}}
	_, err = server.handleCatalogResource(context.Background(), req)
	assert.ErrorContains(t, err, "boom")
}

func TestDocumentResource(t *testing.T) {
	session := connect(t, catalogPorts())

	text, err := readResource(t, session, DocumentURI("archive.example.gov", "report-2019.pdf"))
	require.NoError(t, err)

	var doc domain.Document
	require.NoError(t, json.Unmarshal([]byte(text), &doc))
	assert.Equal(t, "report-2019.pdf", doc.Key)
	assert.Equal(t, "Annual Report 2019", doc.Description)
	assert.Equal(t, []string{"finance"}, doc.Tags)
}

func TestDocumentResource_NotFound(t *testing.T) {
	session := connect(t, catalogPorts())

	_, err := readResource(t, session, DocumentURI("archive.example.gov", "missing.pdf"))
	assert.Error(t, err)
}

func TestDocumentResource_NoCatalogService(t *testing.T) {
	server, err := NewServer(&Ports{Search: &mockSearchService{}})
	require.NoError(t, err)

	uri := DocumentURI("d", "k")
	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
	_, err = server.handleDocumentResource(context.Background(), req)
	assert.Error(t, err)
}

func TestParseDocumentURI(t *testing.T) {
	tests := []struct {
		uri        string
		wantDomain string
		wantKey    string
		wantOK     bool
	}{
		{uri: "library://documents/a.org/file.pdf", wantDomain: "a.org", wantKey: "file.pdf", wantOK: true},
		{uri: DocumentURI("a.org", "dir/file name.pdf"), wantDomain: "a.org", wantKey: "dir/file name.pdf", wantOK: true},
		{uri: "library://documents/a.org/", wantOK: false},
		{uri: "library://documents/a.org", wantOK: false},
		{uri: "library://documents//k", wantOK: false},
		{uri: "library://catalog", wantOK: false},
		{uri: "library://documents/a.org/%zz", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			d, k, ok := parseDocumentURI(tt.uri)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantDomain, d)
				assert.Equal(t, tt.wantKey, k)
			}
		})
	}
}
