// Package mcp exposes the library search engine as an MCP (Model Context Protocol)
// server. Agent frameworks call the search_library tool and read catalog resources
// over stdio or streamable HTTP.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
