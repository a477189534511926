package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for library resources.
	uriScheme = "library://"

	// CatalogURI lists the catalog's domains with document counts.
	CatalogURI = uriScheme + "catalog"

	documentsPrefix = uriScheme + "documents/"

	jsonMIME = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         CatalogURI,
		Name:        "catalog",
		Description: "Domains in the library catalog with their document counts",
		MIMEType:    jsonMIME,
	}, s.handleCatalogResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: documentsPrefix + "{domain}/{key}",
		Name:        "document",
		Description: "Full catalog record of one document",
		MIMEType:    jsonMIME,
	}, s.handleDocumentResource)
}

// handleCatalogResource returns the per-domain document counts.
func (s *Server) handleCatalogResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return jsonResource(req.Params.URI, []domain.DomainStats{})
	}

	stats, err := s.ports.Catalog.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog stats: %w", err)
	}
	if stats == nil {
		stats = []domain.DomainStats{}
	}

	return jsonResource(req.Params.URI, stats)
}

// handleDocumentResource returns one document record.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	domainName, key, ok := parseDocumentURI(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Catalog.Document(ctx, domainName, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	return jsonResource(req.Params.URI, doc)
}

// DocumentURI builds the resource URI of a document. Both parts are
// path-escaped so keys containing "/" survive the round trip.
func DocumentURI(domainName, key string) string {
	return documentsPrefix + url.PathEscape(domainName) + "/" + url.PathEscape(key)
}

// parseDocumentURI extracts domain and key from
// library://documents/{domain}/{key}.
func parseDocumentURI(uri string) (domainName, key string, ok bool) {
	rest, found := strings.CutPrefix(uri, documentsPrefix)
	if !found {
		return "", "", false
	}

	rawDomain, rawKey, found := strings.Cut(rest, "/")
	if !found || rawDomain == "" || rawKey == "" {
		return "", "", false
	}

	domainName, err := url.PathUnescape(rawDomain)
	if err != nil {
		return "", "", false
	}
	key, err = url.PathUnescape(rawKey)
	if err != nil {
		return "", "", false
	}
	return domainName, key, true
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIME,
			Text:     string(data),
		}},
	}, nil
}
