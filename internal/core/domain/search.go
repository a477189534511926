package domain

// MaxResults caps the number of matches a single search collects.
// Scanning stops as soon as the cap is reached, so broad queries are
// silently truncated and pagination never sees more than this many results.
const MaxResults = 600

// UnknownLink is substituted for documents without a link.
const UnknownLink = "unknown"

// SearchQuery holds the text query and optional filters.
// A nil filter is not applied; it never means "must be absent".
type SearchQuery struct {
	// Query is matched against keys and descriptions. Empty matches all.
	Query string

	// Domain keeps only domains whose name contains this value.
	Domain *string

	// Tag keeps documents carrying this exact tag.
	Tag *string

	// Year keeps documents whose date contains this value.
	Year *string

	// Region keeps documents whose region equals this value, ignoring case.
	Region *string
}

// Optional converts s to a filter value, treating the empty string as absent.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SearchResult is the display projection of a matched document.
type SearchResult struct {
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Type        string   `json:"type"`
	Author      string   `json:"author"`
	Date        string   `json:"date"`
	Region      string   `json:"region"`
	Format      string   `json:"format"`
	Size        int64    `json:"size"`
	Link        string   `json:"link"`
}
