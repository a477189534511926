package domain

const unknownDescription = "Unknown"

// LogFormat selects how log lines are rendered.
type LogFormat string

// Available log formats.
const (
	// LogFormatConsole renders human-readable, coloured lines.
	LogFormatConsole LogFormat = "console"

	// LogFormatJSON renders one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// IsValid returns true if the log format is recognised.
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatConsole, LogFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f LogFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f LogFormat) Description() string {
	switch f {
	case LogFormatConsole:
		return "Console (human readable)"
	case LogFormatJSON:
		return "JSON (structured)"
	default:
		return unknownDescription
	}
}

// CatalogSettings locates the catalog artifact.
type CatalogSettings struct {
	// Path is the catalog file (.json, .json.gz, .db or .sqlite).
	Path string
}

// ServerSettings configures the HTTP listener shared by the adapters.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string

	// RateLimit is the sustained request rate per second. Zero disables limiting.
	RateLimit float64

	// RateBurst is the number of requests allowed above the sustained rate.
	RateBurst int

	// CORS enables permissive cross-origin headers.
	CORS bool
}

// LogSettings configures logging output.
type LogSettings struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	Level string

	// Format is the output format.
	Format LogFormat
}

// AppSettings aggregates all application settings.
type AppSettings struct {
	Catalog CatalogSettings
	Server  ServerSettings
	Log     LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Addr:      ":3000",
			RateBurst: 20,
			CORS:      true,
		},
		Log: LogSettings{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
