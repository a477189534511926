package driving

import (
	"context"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search returns every match for query in catalog order, capped at
	// domain.MaxResults. It never fails on a loaded catalog.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error)

	// SearchPage runs Search and returns the requested window with its
	// pagination metadata. page must be valid.
	SearchPage(ctx context.Context, query domain.SearchQuery, page domain.PageRequest) (*domain.SearchPage, error)
}
