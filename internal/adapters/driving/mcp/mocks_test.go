package mcp

import (
	"context"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.SearchResult
	page      *domain.SearchPage
	err       error
	lastQuery domain.SearchQuery
	lastPage  domain.PageRequest
	calls     int
}

func (m *mockSearchService) Search(_ context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	m.calls++
	m.lastQuery = query
	return m.results, m.err
}

func (m *mockSearchService) SearchPage(
	_ context.Context,
	query domain.SearchQuery,
	page domain.PageRequest,
) (*domain.SearchPage, error) {
	m.calls++
	m.lastQuery = query
	m.lastPage = page
	if m.err != nil {
		return nil, m.err
	}
	if m.page != nil {
		return m.page, nil
	}
	return &domain.SearchPage{
		Results:    m.results,
		Pagination: domain.PageInfo{TotalCount: len(m.results), ReturnedCount: len(m.results), Limit: page.Limit},
	}, nil
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	stats    []domain.DomainStats
	document *domain.Document
	err      error
}

func (m *mockCatalogService) Stats(_ context.Context) ([]domain.DomainStats, error) {
	return m.stats, m.err
}

func (m *mockCatalogService) Count(_ context.Context) (int, error) {
	total := 0
	for _, s := range m.stats {
		total += s.Documents
	}
	return total, m.err
}

func (m *mockCatalogService) Document(_ context.Context, _, _ string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.document == nil {
		return nil, domain.ErrNotFound
	}
	return m.document, nil
}
