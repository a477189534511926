// Package catalog selects a catalog loader for an artifact path.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/libsearch/internal/adapters/driven/catalog/jsonfile"
	"github.com/custodia-labs/libsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/ports/driven"
)

// Extensions lists the artifact suffixes NewLoader accepts.
var Extensions = []string{".json", ".json.gz", ".db", ".sqlite"}

// NewLoader returns the loader for path based on its extension.
func NewLoader(path string) (driven.CatalogLoader, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: catalog path is empty", domain.ErrInvalidInput)
	}

	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".json"), strings.HasSuffix(name, ".json.gz"):
		return jsonfile.NewLoader(path), nil
	case strings.HasSuffix(name, ".db"), strings.HasSuffix(name, ".sqlite"):
		return sqlite.NewLoader(path), nil
	default:
		return nil, fmt.Errorf("%w: %s (want one of %s)",
			domain.ErrUnsupportedFormat, path, strings.Join(Extensions, ", "))
	}
}
