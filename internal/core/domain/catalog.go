package domain

// Domain is one namespace of the catalog with its documents in
// insertion order.
type Domain struct {
	Name      string
	Documents []Document
}

// DomainStats summarises a catalog domain.
type DomainStats struct {
	Name      string `json:"name"`
	Documents int    `json:"documents"`
}

// Catalog is the read-only set of documents organised by domain then key.
// Iteration order is the order in which domains and keys were first added.
// A Catalog must not be modified after Build; it is safe for concurrent readers.
type Catalog struct {
	domains []Domain
	index   map[string]map[string]int
	domIdx  map[string]int
	size    int
}

// Domains returns the catalog domains in iteration order.
// Callers must treat the returned slice as read-only.
func (c *Catalog) Domains() []Domain {
	if c == nil {
		return nil
	}
	return c.domains
}

// Len returns the total number of documents.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// Lookup returns the document stored under domain and key.
func (c *Catalog) Lookup(domain, key string) (*Document, bool) {
	if c == nil {
		return nil, false
	}
	keys, ok := c.index[domain]
	if !ok {
		return nil, false
	}
	i, ok := keys[key]
	if !ok {
		return nil, false
	}
	return &c.domains[c.domIdx[domain]].Documents[i], true
}

// Stats returns per-domain document counts in iteration order.
func (c *Catalog) Stats() []DomainStats {
	stats := make([]DomainStats, 0, len(c.Domains()))
	for _, d := range c.Domains() {
		stats = append(stats, DomainStats{Name: d.Name, Documents: len(d.Documents)})
	}
	return stats
}

// CatalogBuilder assembles a Catalog while preserving insertion order.
// A builder is not safe for concurrent use.
type CatalogBuilder struct {
	c *Catalog
}

// NewCatalogBuilder returns an empty builder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{c: &Catalog{
		index:  make(map[string]map[string]int),
		domIdx: make(map[string]int),
	}}
}

// Add appends doc under doc.Domain and doc.Key. Adding a key that already
// exists in the domain replaces the record and keeps its original position.
func (b *CatalogBuilder) Add(doc Document) {
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	di, ok := b.c.domIdx[doc.Domain]
	if !ok {
		di = len(b.c.domains)
		b.c.domains = append(b.c.domains, Domain{Name: doc.Domain})
		b.c.domIdx[doc.Domain] = di
		b.c.index[doc.Domain] = make(map[string]int)
	}

	dom := &b.c.domains[di]
	if ki, exists := b.c.index[doc.Domain][doc.Key]; exists {
		dom.Documents[ki] = doc
		return
	}
	b.c.index[doc.Domain][doc.Key] = len(dom.Documents)
	dom.Documents = append(dom.Documents, doc)
	b.c.size++
}

// Build returns the assembled catalog. The builder must not be used afterwards.
func (b *CatalogBuilder) Build() *Catalog {
	c := b.c
	b.c = nil
	return c
}
