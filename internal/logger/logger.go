// ABOUTME: Singleton zerolog logger for the CLI
// ABOUTME: Writes to a debug.log file so interactive screens stay clean

package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Dir is the directory that receives debug.log. When empty the logger
	// is disabled entirely so terminal output stays untouched.
	Dir string
	// Output overrides the file destination. Used in tests.
	Output io.Writer
}

var (
	instance zerolog.Logger
	once     sync.Once
	logFile  *os.File
)

// Init initialises the singleton logger. Safe to call multiple times; only
// the first call has any effect.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339

		out := opts.Output
		if out == nil {
			out = openLogFile(opts.Dir)
		}
		if out == nil {
			instance = zerolog.Nop()
			return
		}

		instance = zerolog.New(out).
			Level(parseLevel(opts.Level)).
			With().
			Timestamp().
			Logger()
	})
	return instance
}

// Get returns the singleton logger. A no-op logger is returned when Init has
// not run yet, so call sites never need to guard.
func Get() zerolog.Logger {
	Init(Options{})
	return instance
}

// Close closes the underlying log file, if any.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Reset tears down the singleton so the next Init call rebuilds it.
// Intended for use in tests only.
func Reset() {
	Close()
	once = sync.Once{}
	instance = zerolog.Logger{}
}

func openLogFile(dir string) io.Writer {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}
	logFile = f
	return f
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
