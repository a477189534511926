package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/libsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/libsearch/internal/core/domain"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the library catalog",
}

var catalogStatsCmd = &cobra.Command{
	Use:         "stats",
	Short:       "Show document counts per domain",
	Args:        cobra.NoArgs,
	Annotations: needsCatalog(),
	RunE:        runCatalogStats,
}

var catalogShowCmd = &cobra.Command{
	Use:         "show <domain> <key>",
	Short:       "Show the full record of one document",
	Args:        cobra.ExactArgs(2),
	Annotations: needsCatalog(),
	RunE:        runCatalogShow,
}

var catalogConvertCmd = &cobra.Command{
	Use:   "convert <output.db>",
	Short: "Write the loaded catalog to a SQLite file",
	Long: `Writes the catalog given by --catalog (or catalog.path) to a SQLite
database that libsearch can load directly. Catalog order is preserved.
An existing output file has its catalog replaced.

Example:
  libsearch catalog convert --catalog catalog.json.gz catalog.db`,
	Args:        cobra.ExactArgs(1),
	Annotations: needsCatalog(),
	RunE:        runCatalogConvert,
}

func init() {
	catalogStatsCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogCmd.AddCommand(catalogStatsCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogConvertCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogStats(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	stats, err := catalogService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	if catalogJSON {
		if stats == nil {
			stats = []domain.DomainStats{}
		}
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(stats) == 0 {
		cmd.Println("The catalog is empty.")
		return nil
	}

	nameWidth := len("Domain")
	total := 0
	for _, s := range stats {
		nameWidth = max(nameWidth, len(s.Name))
		total += s.Documents
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("%-*s  %9s", nameWidth, "Domain", "Documents")))
	for _, s := range stats {
		cmd.Printf("%-*s  %9d\n", nameWidth, s.Name, s.Documents)
	}
	cmd.Println(mutedStyle.Render(strings.Repeat("-", nameWidth+11)))
	cmd.Printf("%-*s  %9d\n", nameWidth, fmt.Sprintf("%d domains", len(stats)), total)

	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	doc, err := catalogService.Document(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runCatalogConvert(cmd *cobra.Command, args []string) error {
	out := args[0]
	switch strings.ToLower(filepath.Ext(out)) {
	case ".db", ".sqlite":
	default:
		return fmt.Errorf("%w: output must end in .db or .sqlite", domain.ErrUnsupportedFormat)
	}

	source := catalogPath
	if source == "" && settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("reading settings: %w", err)
		}
		source = settings.Catalog.Path
	}
	if sameFile(source, out) {
		return fmt.Errorf("%w: output %s is the catalog being read", domain.ErrInvalidInput, out)
	}

	c := activeCatalog
	if c == nil {
		return domain.ErrCatalogUnavailable
	}

	store, err := sqlite.Open(out)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Replace(cmd.Context(), c); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	cmd.Printf("Wrote %d documents in %d domains to %s\n", c.Len(), len(c.Domains()), out)
	return nil
}

func sameFile(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
