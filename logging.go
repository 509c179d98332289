package contagiongo

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel names a zerolog level without leaking the dependency into
// callers that only need to pick one (reporting/logger.go's LogLevel in
// the example chaos-engineering pack, adapted to this module's needs).
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggerConfig configures NewLogger.
type LoggerConfig struct {
	Level  LogLevel
	Pretty bool
	Output io.Writer
}

// NewLogger builds a zerolog.Logger for the CLI and sweep driver to
// share, with timestamps always on and an optional console formatter
// for interactive runs.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case LogLevelDebug:
		logger = logger.Level(zerolog.DebugLevel)
	case LogLevelWarn:
		logger = logger.Level(zerolog.WarnLevel)
	case LogLevelError:
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}
