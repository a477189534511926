package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in config.toml.

Use "settings show" to print the effective values and
"settings set <key> <value>" to change one.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it to config.toml.

Keys:
  catalog.path        catalog file (.json, .json.gz, .db, .sqlite)
  server.addr         HTTP listen address, e.g. :3000
  server.rate_limit   requests per second, 0 disables limiting
  server.rate_burst   requests allowed in a burst (at least 1)
  server.cors         true or false
  log.level           trace, debug, info, warn or error
  log.format          console or json`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Catalog]")
	if settings.Catalog.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Catalog.Path)
	} else {
		cmd.Printf("  Path: (not set)\n")
	}
	if catalogPath != "" {
		cmd.Printf("  Override: %s (--catalog)\n", catalogPath)
	}
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	if settings.Server.RateLimit > 0 {
		cmd.Printf("  Rate limit: %g req/s (burst %d)\n", settings.Server.RateLimit, settings.Server.RateBurst)
	} else {
		cmd.Printf("  Rate limit: off\n")
	}
	cmd.Printf("  CORS: %s\n", onOff(settings.Server.CORS))
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Level: %s\n", settings.Log.Level)
	cmd.Printf("  Format: %s\n", settings.Log.Format.Description())

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w\nvalid keys: %s", err, strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
