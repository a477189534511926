package driving

import "github.com/custodia-labs/libsearch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, filling unset values with defaults.
	Get() (*domain.AppSettings, error)

	// Set validates and persists a single setting by its dotted key.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string
}
