package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/ports/driving"
	"github.com/custodia-labs/libsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// urlScheme prefixes every constructed result URL.
const urlScheme = "https://"

// SearchService answers search queries against a fixed catalog.
type SearchService struct {
	catalog *domain.Catalog
}

// NewSearchService creates a search service over catalog.
// The catalog must not be modified afterwards.
func NewSearchService(catalog *domain.Catalog) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search returns every match for query in catalog order.
func (s *SearchService) Search(_ context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	logger.Section("Search Execution")
	results := Search(s.catalog, query)

	l := logger.Get()
	l.Debug().
		Str("query", query.Query).
		Int("matches", len(results)).
		Bool("capped", len(results) == domain.MaxResults).
		Msg("search completed")

	return results, nil
}

// SearchPage runs Search and slices the capped result list to page.
func (s *SearchService) SearchPage(
	ctx context.Context, query domain.SearchQuery, page domain.PageRequest,
) (*domain.SearchPage, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	results, err := s.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	window, info := Paginate(results, page)
	return &domain.SearchPage{Results: window, Pagination: info}, nil
}

// Search scans catalog and returns the documents matching every supplied
// filter, in domain-then-key order. Scanning stops once domain.MaxResults
// matches have been collected.
func Search(catalog *domain.Catalog, query domain.SearchQuery) []domain.SearchResult {
	m := newMatcher(query)
	results := make([]domain.SearchResult, 0)

	for _, dom := range catalog.Domains() {
		if !m.keepsDomain(dom.Name) {
			continue
		}
		for i := range dom.Documents {
			if len(results) >= domain.MaxResults {
				return results
			}
			doc := &dom.Documents[i]
			if m.document(doc) {
				results = append(results, toResult(dom.Name, doc))
			}
		}
	}

	return results
}

// matcher holds a query with its text pre-lowered.
type matcher struct {
	text   string
	domain string
	tag    *string
	year   *string
	region *string
}

func newMatcher(q domain.SearchQuery) matcher {
	m := matcher{
		text:   strings.ToLower(q.Query),
		tag:    q.Tag,
		year:   q.Year,
		region: q.Region,
	}
	if q.Domain != nil {
		m.domain = *q.Domain
	}
	return m
}

// keepsDomain reports whether documents of name should be scanned.
// The filter is a substring of the domain name, not an equality test.
func (m matcher) keepsDomain(name string) bool {
	return m.domain == "" || strings.Contains(name, m.domain)
}

// document reports whether doc satisfies every supplied filter.
func (m matcher) document(doc *domain.Document) bool {
	if m.text != "" &&
		!strings.Contains(strings.ToLower(doc.Key), m.text) &&
		!strings.Contains(strings.ToLower(doc.Description), m.text) {
		return false
	}
	if m.tag != nil && !doc.HasTag(*m.tag) {
		return false
	}
	if m.year != nil && !strings.Contains(doc.Date, *m.year) {
		return false
	}
	if m.region != nil && !strings.EqualFold(doc.Region, *m.region) {
		return false
	}
	return true
}

func toResult(domainName string, doc *domain.Document) domain.SearchResult {
	link := domain.UnknownLink
	if doc.Link != nil && *doc.Link != "" {
		link = *doc.Link
	}

	return domain.SearchResult{
		URL:         urlScheme + domainName + "/" + StripExtension(doc.Key),
		Description: doc.Description,
		Tags:        doc.Tags,
		Type:        doc.Type,
		Author:      doc.Author,
		Date:        doc.Date,
		Region:      doc.Region,
		Format:      doc.Format,
		Size:        doc.Size,
		Link:        link,
	}
}

// StripExtension removes a trailing file extension from name.
// The extension is the last "." and everything after it, provided that
// suffix is non-empty and contains no "/" or further ".".
func StripExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return name
	}
	if strings.ContainsRune(name[i+1:], '/') {
		return name
	}
	return name[:i]
}
