package rest

import (
	"context"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.SearchResult
	err       error
	lastQuery domain.SearchQuery
}

func (m *mockSearchService) Search(_ context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	m.lastQuery = query
	return m.results, m.err
}

func (m *mockSearchService) SearchPage(
	_ context.Context,
	query domain.SearchQuery,
	_ domain.PageRequest,
) (*domain.SearchPage, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SearchPage{Results: m.results}, nil
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	stats []domain.DomainStats
	doc   *domain.Document
	err   error
}

func (m *mockCatalogService) Stats(_ context.Context) ([]domain.DomainStats, error) {
	return m.stats, m.err
}

func (m *mockCatalogService) Count(_ context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	total := 0
	for _, s := range m.stats {
		total += s.Documents
	}
	return total, nil
}

func (m *mockCatalogService) Document(_ context.Context, _, _ string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.doc == nil {
		return nil, domain.ErrNotFound
	}
	return m.doc, nil
}
