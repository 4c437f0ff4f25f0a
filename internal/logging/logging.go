// Package logging provides the diagnostic loggers used by the CLI. Loggers
// satisfy rst.Reporter so unrecognized commands surface on stderr.
package logging

import (
	"fmt"
	"io"
	"strings"
)

// Logger is the structured logging contract shared by the console and
// go-logger backends. Args are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithFields(fields map[string]any) Logger
}

// Config selects and tunes a backend.
type Config struct {
	Level  string
	Format string
	Writer io.Writer
}

// New builds a logger for cfg. "console" (the default) writes plain lines to
// cfg.Writer; "json" and "pretty" are handled by go-logger.
func New(cfg Config) (Logger, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		return NewConsole(Options{Writer: cfg.Writer, MinLevel: &level}), nil
	case "json", "pretty":
		return NewGoLogger(cfg)
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}
}
