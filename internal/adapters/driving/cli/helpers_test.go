package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/libsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/services"
)

func strPtr(s string) *string { return &s }

// testCatalog has four documents over two domains.
func testCatalog() *domain.Catalog {
	b := domain.NewCatalogBuilder()
	b.Add(domain.Document{
		Domain:      "archive.example.gov",
		Key:         "report-2019.pdf",
		Type:        "report",
		Format:      "pdf",
		Size:        2048,
		Description: "Annual Report 2019",
		Date:        "2019",
		Region:      "US",
		Tags:        []string{"finance"},
		Link:        strPtr("https://web.archive.org/report-2019"),
	})
	b.Add(domain.Document{
		Domain:      "archive.example.gov",
		Key:         "report-2020.pdf",
		Description: "Annual Report 2020",
		Date:        "2020",
		Region:      "US",
	})
	b.Add(domain.Document{
		Domain:      "data.example.eu",
		Key:         "summary.html",
		Description: "Report summary",
		Region:      "EU",
	})
	b.Add(domain.Document{
		Domain:      "data.example.eu",
		Key:         "readme.txt",
		Description: "Read me first",
	})
	return b.Build()
}

// setupTestServices injects services over testCatalog and an in-memory
// config store. The returned function restores the previous state.
func setupTestServices() func() {
	c := testCatalog()
	activeCatalog = c
	searchService = services.NewSearchService(c)
	catalogService = services.NewCatalogService(c)
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	return func() {
		activeCatalog = nil
		searchService = nil
		catalogService = nil
		settingsService = nil
	}
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCommand executes rootCmd with args and returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
