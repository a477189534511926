package domain

import "fmt"

// Pagination bounds shared by every adapter.
const (
	DefaultPageLimit = 10
	MinPageLimit     = 1
	MaxPageLimit     = 50
)

// PageRequest selects a window of an ordered result list.
type PageRequest struct {
	Limit  int
	Offset int
}

// DefaultPageRequest returns the first page with the default limit.
func DefaultPageRequest() PageRequest {
	return PageRequest{Limit: DefaultPageLimit}
}

// Validate checks that the request is within the accepted bounds.
func (p PageRequest) Validate() error {
	if p.Limit < MinPageLimit || p.Limit > MaxPageLimit {
		return fmt.Errorf("%w: limit must be between %d and %d, got %d",
			ErrInvalidInput, MinPageLimit, MaxPageLimit, p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: offset must be non-negative, got %d", ErrInvalidInput, p.Offset)
	}
	return nil
}

// PageInfo describes a page of results.
type PageInfo struct {
	TotalCount    int  `json:"total_count"`
	ReturnedCount int  `json:"returned_count"`
	Limit         int  `json:"limit"`
	Offset        int  `json:"offset"`
	HasMore       bool `json:"has_more"`
	NextOffset    *int `json:"next_offset,omitempty"`
	Page          int  `json:"page"`
	TotalPages    int  `json:"total_pages"`
}

// SearchPage is one page of search results with its metadata.
type SearchPage struct {
	Results    []SearchResult `json:"results"`
	Pagination PageInfo       `json:"pagination"`
}
