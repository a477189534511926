package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

var (
	searchDomain string
	searchTag    string
	searchYear   string
	searchRegion string
	searchLimit  int
	searchOffset int
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the library catalog",
	Long: `Searches document names and descriptions for the query text
(case-insensitive) and narrows the matches with optional filters.

Results are listed in catalog order, without ranking. At most 600 matches
are considered; page through them with --limit and --offset.

Examples:
  libsearch search "annual report"
  libsearch search report --domain gov --year 2019 --region us
  libsearch search --tag finance --limit 50 --offset 50 --json`,
	Args:        cobra.ArbitraryArgs,
	Annotations: needsCatalog(),
	RunE:        runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchDomain, "domain", "", "only domains whose name contains this text")
	f.StringVar(&searchTag, "tag", "", "only documents with exactly this tag")
	f.StringVar(&searchYear, "year", "", "only documents whose date contains this text")
	f.StringVar(&searchRegion, "region", "", "only documents from this region (case-insensitive)")
	f.IntVarP(&searchLimit, "limit", "n", domain.DefaultPageLimit, "results per page (1-50)")
	f.IntVar(&searchOffset, "offset", 0, "number of results to skip")
	f.BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := domain.SearchQuery{
		Query:  strings.Join(args, " "),
		Domain: domain.Optional(searchDomain),
		Tag:    domain.Optional(searchTag),
		Year:   domain.Optional(searchYear),
		Region: domain.Optional(searchRegion),
	}
	page := domain.PageRequest{Limit: searchLimit, Offset: searchOffset}

	result, err := searchService.SearchPage(cmd.Context(), query, page)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, result)
	}

	outputSearchList(cmd, result, terminalWidth())
	return nil
}

func outputSearchJSON(cmd *cobra.Command, page *domain.SearchPage) error {
	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchList(cmd *cobra.Command, page *domain.SearchPage, width int) {
	p := page.Pagination
	if p.TotalCount == 0 {
		cmd.Println("No results found.")
		return
	}
	if len(page.Results) == 0 {
		cmd.Printf("No results at offset %d (%d total).\n", p.Offset, p.TotalCount)
		return
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("Results %d-%d of %d (page %d of %d)",
		p.Offset+1, p.Offset+p.ReturnedCount, p.TotalCount, p.Page, p.TotalPages)))
	if p.TotalCount == domain.MaxResults {
		cmd.Println(noticeStyle.Render(fmt.Sprintf("Only the first %d matches are shown; refine the query.", domain.MaxResults)))
	}
	cmd.Println()

	body := indentStyle.Width(max(width-2, 20))
	for i := range page.Results {
		r := &page.Results[i]
		cmd.Printf("  [%d] %s\n", p.Offset+i+1, urlStyle.Render(r.URL))
		if r.Description != "" {
			cmd.Println(body.Render(r.Description))
		}
		if meta := resultMeta(r); meta != "" {
			cmd.Println(body.Render(mutedStyle.Render(meta)))
		}
		if r.Link != domain.UnknownLink {
			cmd.Println(body.Render(mutedStyle.Render("Archived: " + r.Link)))
		}
		cmd.Println()
	}

	if p.NextOffset != nil {
		cmd.Println(mutedStyle.Render(fmt.Sprintf("More results: --offset %d", *p.NextOffset)))
	}
}

// resultMeta joins the non-empty descriptive fields of r.
func resultMeta(r *domain.SearchResult) string {
	var parts []string
	for _, s := range []string{r.Type, r.Format, r.Author, r.Date, r.Region} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if r.Size > 0 {
		parts = append(parts, humanize.IBytes(uint64(r.Size)))
	}
	if len(r.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(r.Tags, " #"))
	}
	return strings.Join(parts, " · ")
}
