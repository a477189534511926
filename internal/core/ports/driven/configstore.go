package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("server.addr") regardless of how the
// implementation nests them on disk.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if missing or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if missing or not numeric.
	GetInt(key string) int

	// GetFloat retrieves a numeric value as float64, or 0 if missing or not numeric.
	GetFloat(key string) float64

	// GetBool retrieves a boolean value, or false if missing or not a boolean.
	GetBool(key string) bool

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
