package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/logger"
)

// SearchToolName is the name agents call.
const SearchToolName = "search_library"

const searchToolDescription = "Search the digital library of archived documents. " +
	"Matches the query text against document names and descriptions, optionally " +
	"filtered by domain, tag, year and region. Results are paginated: use limit " +
	"(1-50, default 10) and offset, and follow pagination.next_offset while " +
	"pagination.has_more is true. At most 600 matches are considered."

// SearchInput is the input schema for the search_library tool.
// Every field is optional.
type SearchInput struct {
	Query  string `json:"query,omitempty" jsonschema:"text to find in document names or descriptions (case-insensitive)"`
	Domain string `json:"domain,omitempty" jsonschema:"restrict to domains whose name contains this text"`
	Tag    string `json:"tag,omitempty" jsonschema:"restrict to documents carrying exactly this tag"`
	Year   string `json:"year,omitempty" jsonschema:"restrict to documents whose date contains this text, e.g. 2019"`
	Region string `json:"region,omitempty" jsonschema:"restrict to documents from this region (case-insensitive)"`
	Limit  *int   `json:"limit,omitempty" jsonschema:"results per page, 1 to 50 (default 10)"`
	Offset *int   `json:"offset,omitempty" jsonschema:"number of results to skip (default 0)"`
}

// query converts the input to a domain query. Empty strings mean "not supplied".
func (in SearchInput) query() domain.SearchQuery {
	return domain.SearchQuery{
		Query:  in.Query,
		Domain: domain.Optional(in.Domain),
		Tag:    domain.Optional(in.Tag),
		Year:   domain.Optional(in.Year),
		Region: domain.Optional(in.Region),
	}
}

// page converts limit and offset to a page request, applying defaults.
func (in SearchInput) page() domain.PageRequest {
	page := domain.DefaultPageRequest()
	if in.Limit != nil {
		page.Limit = *in.Limit
	}
	if in.Offset != nil {
		page.Offset = *in.Offset
	}
	return page
}

// SearchOutput is the output schema for the search_library tool.
type SearchOutput struct {
	Results    []domain.SearchResult `json:"results"`
	Pagination domain.PageInfo       `json:"pagination"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        SearchToolName,
		Description: searchToolDescription,
	}, s.handleSearch)
}

// handleSearch handles the search_library tool invocation. Errors are
// reported to the caller as a tool result with isError set.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	callID := uuid.NewString()
	l := logger.Get().With().Str("call_id", callID).Str("tool", SearchToolName).Logger()

	page := input.page()
	l.Info().
		Str("query", input.Query).
		Str("domain", input.Domain).
		Str("tag", input.Tag).
		Str("year", input.Year).
		Str("region", input.Region).
		Int("limit", page.Limit).
		Int("offset", page.Offset).
		Msg("tool call")

	if err := page.Validate(); err != nil {
		l.Warn().Err(err).Msg("invalid arguments")
		return nil, SearchOutput{}, err
	}

	result, err := s.ports.Search.SearchPage(ctx, input.query(), page)
	if err != nil {
		l.Error().Err(err).Msg("search failed")
		return nil, SearchOutput{}, fmt.Errorf("searching library: %w", err)
	}

	output := SearchOutput{
		Results:    normaliseResults(result.Results),
		Pagination: result.Pagination,
	}

	l.Info().
		Int("total", output.Pagination.TotalCount).
		Int("returned", output.Pagination.ReturnedCount).
		Msg("tool result")

	return nil, output, nil
}

// normaliseResults replaces nil slices with empty ones so the structured
// output always carries arrays.
func normaliseResults(results []domain.SearchResult) []domain.SearchResult {
	if results == nil {
		return []domain.SearchResult{}
	}
	for i := range results {
		if results[i].Tags == nil {
			results[i].Tags = []string{}
		}
	}
	return results
}
