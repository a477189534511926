// Package logger provides levelled, structured logging for libsearch.
// It wraps a zerolog logger behind package-level helpers so adapters and
// services log the same way. Verbose mode (the --verbose flag) forces the
// debug level regardless of the configured level.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Output formats understood by Setup.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures the package logger.
type Options struct {
	// Level is a zerolog level name. Empty means "info".
	Level string

	// Format is FormatConsole or FormatJSON. Empty means FormatConsole.
	Format string
}

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

var (
	opts = Options{Level: "info", Format: FormatConsole}
	base = build()
)

// Setup applies level and format options.
// Returns an error if the level or format is not recognised.
func Setup(o Options) error {
	if o.Level == "" {
		o.Level = "info"
	}
	if o.Format == "" {
		o.Format = FormatConsole
	}
	if _, err := zerolog.ParseLevel(o.Level); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	if o.Format != FormatConsole && o.Format != FormatJSON {
		return fmt.Errorf("unknown log format %q", o.Format)
	}

	mu.Lock()
	defer mu.Unlock()
	opts = o
	base = build()
	return nil
}

// SetVerbose enables or disables verbose (debug) logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = build()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build()
}

// Get returns the underlying zerolog logger for structured fields.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// build creates the zerolog logger (caller must hold lock).
func build() zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	w := output
	if opts.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: time.TimeOnly, NoColor: !isTerminal(output)}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) {
	l := Get()
	l.Debug().Msgf(format, args...)
}

// Section logs a section header at debug level.
func Section(name string) {
	l := Get()
	l.Debug().Str("section", name).Msg("=== " + name + " ===")
}

// Info logs a formatted message at info level.
func Info(format string, args ...any) {
	l := Get()
	l.Info().Msgf(format, args...)
}

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) {
	l := Get()
	l.Warn().Msgf(format, args...)
}

// Error logs a formatted message at error level.
func Error(format string, args ...any) {
	l := Get()
	l.Error().Msgf(format, args...)
}
