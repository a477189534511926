package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// mockCatalogLoader is a mock implementation of driven.CatalogLoader.
type mockCatalogLoader struct {
	catalog *domain.Catalog
	err     error
	calls   int
}

func (m *mockCatalogLoader) Load(_ context.Context) (*domain.Catalog, error) {
	m.calls++
	return m.catalog, m.err
}

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("returns loaded catalog", func(t *testing.T) {
		loader := &mockCatalogLoader{catalog: newTestCatalog(domain.Document{Domain: "a.org", Key: "k"})}

		catalog, err := LoadCatalog(ctx, loader)

		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Len())
		assert.Equal(t, 1, loader.calls)
	})

	t.Run("wraps loader error", func(t *testing.T) {
		loader := &mockCatalogLoader{err: errors.New("disk on fire")}

		_, err := LoadCatalog(ctx, loader)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading catalog")
		assert.Contains(t, err.Error(), "disk on fire")
	})

	t.Run("nil loader is unavailable", func(t *testing.T) {
		_, err := LoadCatalog(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}

func TestCatalogService(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newTestCatalog(
		domain.Document{Domain: "a.org", Key: "one", Author: "Lin"},
		domain.Document{Domain: "a.org", Key: "two"},
		domain.Document{Domain: "b.org", Key: "three"},
	))

	t.Run("stats", func(t *testing.T) {
		stats, err := svc.Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, []domain.DomainStats{{Name: "a.org", Documents: 2}, {Name: "b.org", Documents: 1}}, stats)
	})

	t.Run("count", func(t *testing.T) {
		n, err := svc.Count(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("document found", func(t *testing.T) {
		doc, err := svc.Document(ctx, "a.org", "one")

		require.NoError(t, err)
		assert.Equal(t, "Lin", doc.Author)
	})

	t.Run("document not found", func(t *testing.T) {
		_, err := svc.Document(ctx, "a.org", "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCatalogService_NilCatalog(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(nil)

	_, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)

	_, err = svc.Count(ctx)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)

	_, err = svc.Document(ctx, "a", "b")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}
