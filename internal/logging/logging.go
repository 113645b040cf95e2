// Package logging configures zerolog for the fluegas CLI: console or JSON
// output, optional file logging, component-scoped loggers, and ULID run
// identifiers for correlating the log lines of one calculation.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config holds the logging settings resolved from configuration, the
// environment, and CLI flags.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string
	// Format selects the console writer ("console") or raw JSON ("json").
	Format string
	// File, when non-empty, duplicates log output to the named file.
	File string
}

// New builds a logger from cfg. When cfg.File is set, the returned closer
// owns the open file handle; callers should close it when the command
// finishes. The closer is nil when no file is in use.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	var closer io.Closer
	if cfg.File != "" {
		f, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if fileErr != nil {
			return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", fileErr)
		}
		closer = f
		out = zerolog.MultiLevelWriter(out, f)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

// ComponentLogger returns base with a component field attached.
func ComponentLogger(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// NewRunID returns a fresh ULID for tagging one calculation run.
func NewRunID() string {
	return ulid.Make().String()
}
