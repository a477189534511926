// Package rest serves the library search engine over plain HTTP.
//
// Routes:
//
//	GET /api/search                    full, unpaginated result array
//	GET /api/catalog                   per-domain document counts
//	GET /api/documents/{domain}/{key}  one catalog record
//	GET /health                        liveness and catalog size
//
// Other handlers, such as the MCP streamable HTTP endpoint, can be mounted on
// the same router with Mount. Every request passes through request-ID, access
// log, optional CORS and optional rate-limit middleware.
package rest
