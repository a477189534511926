package driving

import (
	"context"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// CatalogService exposes read-only information about the loaded catalog.
type CatalogService interface {
	// Stats returns per-domain document counts in catalog order.
	Stats(ctx context.Context) ([]domain.DomainStats, error)

	// Count returns the total number of documents.
	Count(ctx context.Context) (int, error)

	// Document returns one document record.
	// Returns domain.ErrNotFound if the domain or key does not exist.
	Document(ctx context.Context, domainName, key string) (*domain.Document, error)
}
