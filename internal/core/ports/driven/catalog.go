package driven

import (
	"context"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// CatalogLoader reads a catalog artifact into memory.
// Loaders run once at startup; the returned catalog is never modified.
type CatalogLoader interface {
	// Load reads and returns the full catalog.
	Load(ctx context.Context) (*domain.Catalog, error)
}
