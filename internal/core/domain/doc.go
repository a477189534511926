// Package domain defines the core business entities for libsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An archived file record within a catalog domain
//   - Catalog: The read-only, ordered set of documents searched by the engine
//   - SearchQuery / SearchResult: A search request and its display projection
//   - PageRequest / PageInfo: Pagination input and metadata
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
