// Package cli implements the libsearch command line.
//
// Services are package-level so tests can inject them before executing
// rootCmd. PersistentPreRunE builds whatever is still nil from the config
// directory and the catalog file.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/libsearch/internal/adapters/driven/catalog"
	"github.com/custodia-labs/libsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/ports/driving"
	"github.com/custodia-labs/libsearch/internal/core/services"
	"github.com/custodia-labs/libsearch/internal/logger"
)

// annotationCatalog marks commands that need the catalog loaded.
const annotationCatalog = "libsearch/catalog"

var version = "dev"

// Global flags.
var (
	configDir   string
	catalogPath string
	verbose     bool
)

// Services shared by all commands.
var (
	activeCatalog   *domain.Catalog
	searchService   driving.SearchService
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "libsearch",
	Short: "Search a digital library of archived documents",
	Long: `libsearch answers filtered, paginated queries against a fixed catalog of
archived documents. The same search engine is available from the command
line, over a JSON HTTP API and as an MCP tool for AI agents.

The catalog is a JSON (optionally gzip-compressed) or SQLite file, set with
--catalog or the catalog.path setting.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.libsearch)")
	flags.StringVar(&catalogPath, "catalog", "", "catalog file (.json, .json.gz, .db, .sqlite)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command and /health.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup configures logging and builds any services not already injected.
func setup(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		dir := configDir
		if dir == "" {
			d, err := file.DefaultDir()
			if err != nil {
				return err
			}
			dir = d
		}

		store, err := file.NewConfigStore(dir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		settingsService = services.NewSettingsService(store)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	if err := logger.Setup(logger.Options{
		Level:  settings.Log.Level,
		Format: settings.Log.Format.String(),
	}); err != nil {
		return err
	}
	logger.SetVerbose(verbose)

	if !requiresCatalog(cmd) || searchService != nil {
		return nil
	}

	path := catalogPath
	if path == "" {
		path = settings.Catalog.Path
	}
	return loadCatalog(cmd.Context(), path)
}

// errNoCatalog is returned when neither --catalog nor catalog.path is set.
var errNoCatalog = errors.New("no catalog configured: pass --catalog or run 'libsearch settings set catalog.path <file>'")

func loadCatalog(ctx context.Context, path string) error {
	if path == "" {
		return errNoCatalog
	}

	loader, err := catalog.NewLoader(path)
	if err != nil {
		return err
	}

	c, err := services.LoadCatalog(ctx, loader)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	activeCatalog = c
	searchService = services.NewSearchService(c)
	catalogService = services.NewCatalogService(c)
	return nil
}

func requiresCatalog(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationCatalog]; ok {
			return true
		}
	}
	return false
}

// needsCatalog is the annotation set for commands that search or inspect the catalog.
func needsCatalog() map[string]string {
	return map[string]string{annotationCatalog: "required"}
}
