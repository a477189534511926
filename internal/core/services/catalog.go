package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/ports/driven"
	"github.com/custodia-labs/libsearch/internal/core/ports/driving"
	"github.com/custodia-labs/libsearch/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService answers read-only questions about the loaded catalog.
type CatalogService struct {
	catalog *domain.Catalog
}

// NewCatalogService creates a catalog service over catalog.
func NewCatalogService(catalog *domain.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// LoadCatalog runs loader once and logs a summary of what was loaded.
func LoadCatalog(ctx context.Context, loader driven.CatalogLoader) (*domain.Catalog, error) {
	if loader == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	catalog, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	l := logger.Get()
	l.Info().
		Int("domains", len(catalog.Domains())).
		Int("documents", catalog.Len()).
		Msg("catalog loaded")

	return catalog, nil
}

// Stats returns per-domain document counts in catalog order.
func (s *CatalogService) Stats(_ context.Context) ([]domain.DomainStats, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.catalog.Stats(), nil
}

// Count returns the total number of documents.
func (s *CatalogService) Count(_ context.Context) (int, error) {
	if s.catalog == nil {
		return 0, domain.ErrCatalogUnavailable
	}
	return s.catalog.Len(), nil
}

// Document returns the record stored under domainName and key.
func (s *CatalogService) Document(_ context.Context, domainName, key string) (*domain.Document, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	doc, ok := s.catalog.Lookup(domainName, key)
	if !ok {
		return nil, fmt.Errorf("document %s/%s: %w", domainName, key, domain.ErrNotFound)
	}
	return doc, nil
}
