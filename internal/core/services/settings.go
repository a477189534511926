package services

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/ports/driven"
	"github.com/custodia-labs/libsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCatalogPath     = "catalog.path"
	keyServerAddr      = "server.addr"
	keyServerRateLimit = "server.rate_limit"
	keyServerRateBurst = "server.rate_burst"
	keyServerCORS      = "server.cors"
	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
)

var settingKeys = []string{
	keyCatalogPath,
	keyServerAddr,
	keyServerRateLimit,
	keyServerRateBurst,
	keyServerCORS,
	keyLogLevel,
	keyLogFormat,
}

var logLevels = []string{"trace", "debug", "info", "warn", "error"}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			Path: s.configStore.GetString(keyCatalogPath),
		},
		Server: domain.ServerSettings{
			Addr:      s.getString(keyServerAddr, defaults.Server.Addr),
			RateLimit: s.getFloat(keyServerRateLimit, defaults.Server.RateLimit),
			RateBurst: s.getInt(keyServerRateBurst, defaults.Server.RateBurst),
			CORS:      s.getBool(keyServerCORS, defaults.Server.CORS),
		},
		Log: domain.LogSettings{
			Level:  s.getLogLevel(defaults.Log.Level),
			Format: s.getLogFormat(defaults.Log.Format),
		},
	}

	return settings, nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return slices.Clone(settingKeys)
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	var parsed any

	switch key {
	case keyCatalogPath, keyServerAddr:
		parsed = value
	case keyServerRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		parsed = f
	case keyServerRateBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		parsed = int64(n)
	case keyServerCORS:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case keyLogLevel:
		if !slices.Contains(logLevels, value) {
			return fmt.Errorf("%w: %s must be one of %v", domain.ErrInvalidInput, key, logLevels)
		}
		parsed = value
	case keyLogFormat:
		if !domain.LogFormat(value).IsValid() {
			return fmt.Errorf("%w: %s must be console or json", domain.ErrInvalidInput, key)
		}
		parsed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getLogLevel(defaultVal string) string {
	val := s.configStore.GetString(keyLogLevel)
	if !slices.Contains(logLevels, val) {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getLogFormat(defaultVal domain.LogFormat) domain.LogFormat {
	format := domain.LogFormat(s.configStore.GetString(keyLogFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
