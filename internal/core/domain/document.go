package domain

// Document is a single archived file record in the catalog.
// Documents are immutable once the catalog has been built.
type Document struct {
	// Domain is the site or collection the document belongs to.
	Domain string `json:"domain"`

	// Key identifies the document within its domain, usually a filename.
	Key string `json:"key"`

	// Type is the document category (e.g. "book", "article").
	Type string `json:"type"`

	// Format is the file format (e.g. "pdf").
	Format string `json:"format"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// MD5 is the file checksum, kept opaque.
	MD5 string `json:"md5"`

	// Link is an optional external download link.
	Link *string `json:"link"`

	Description  string   `json:"description"`
	ArchivedDate string   `json:"archived_date"`
	Author       string   `json:"author"`
	Date         string   `json:"date"`
	Region       string   `json:"region"`
	Tags         []string `json:"tags"`
}

// HasTag reports whether tag is one of the document tags.
// The comparison is exact and case-sensitive.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
