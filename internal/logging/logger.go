// Package logging builds the zerolog logger shared by the CLI and services.
//
// Diagnostics go to stderr so they never interleave with the menu transcript
// on stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level is a log level name as accepted on the command line.
type Level string

const (
	DebugLevel    Level = "debug"
	InfoLevel     Level = "info"
	WarnLevel     Level = "warn"
	ErrorLevel    Level = "error"
	DisabledLevel Level = "disabled"
)

// Format selects the output encoding.
type Format string

const (
	ConsoleFormat Format = "console"
	JSONFormat    Format = "json"
)

// Config describes how to build a logger.
type Config struct {
	Level  Level
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ParseLevel maps a level name to its zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case DebugLevel:
		return zerolog.DebugLevel, nil
	case InfoLevel:
		return zerolog.InfoLevel, nil
	case WarnLevel, "warning":
		return zerolog.WarnLevel, nil
	case ErrorLevel:
		return zerolog.ErrorLevel, nil
	case DisabledLevel, "off", "none":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case ConsoleFormat, JSONFormat:
		return f, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// New returns a logger configured by cfg.
func New(cfg Config) (zerolog.Logger, error) {
	lvl, err := ParseLevel(string(cfg.Level))
	if err != nil {
		return zerolog.Nop(), err
	}
	format, err := ParseFormat(string(cfg.Format))
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if format == ConsoleFormat {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
