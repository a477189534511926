package services

import (
	"math"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// Paginate returns the window of items selected by page together with its
// metadata. An offset beyond the end yields an empty window. page.Limit must
// be at least 1.
func Paginate[T any](items []T, page domain.PageRequest) ([]T, domain.PageInfo) {
	total := len(items)

	// Offsets up to math.MaxInt are valid, so no sum may involve page.Offset.
	start := min(page.Offset, total)
	end := start + min(page.Limit, total-start)
	window := make([]T, end-start)
	copy(window, items[start:end])

	info := domain.PageInfo{
		TotalCount:    total,
		ReturnedCount: len(window),
		Limit:         page.Limit,
		Offset:        page.Offset,
		HasMore:       page.Offset < total-page.Limit,
		Page:          pageNumber(page),
		TotalPages:    (total + page.Limit - 1) / page.Limit,
	}
	if info.HasMore {
		next := page.Offset + page.Limit
		info.NextOffset = &next
	}

	return window, info
}

// pageNumber is the 1-based page holding page.Offset, saturating at math.MaxInt.
func pageNumber(page domain.PageRequest) int {
	n := page.Offset / page.Limit
	if n == math.MaxInt {
		return n
	}
	return n + 1
}
