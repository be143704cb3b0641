// Package logger provides logging functionality for the application.
package logger

import (
	"fmt"
	"io"
	"strings"
)

// Level represents the logging level.
type Level string

const (
	// DebugLevel logs debug messages.
	DebugLevel Level = "debug"
	// InfoLevel logs info messages.
	InfoLevel Level = "info"
	// WarnLevel logs warning messages.
	WarnLevel Level = "warn"
	// ErrorLevel logs error messages.
	ErrorLevel Level = "error"
	// FatalLevel logs fatal messages and exits.
	FatalLevel Level = "fatal"
)

// ParseLevel converts a case-insensitive level name into a Level.
func ParseLevel(s string) (Level, error) {
	lvl := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := logLevels[lvl]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return lvl, nil
}

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum logging level.
	Level Level `mapstructure:"level" yaml:"level"`
	// Development enables development mode.
	Development bool `mapstructure:"development" yaml:"development"`
	// Encoding sets the logger's encoding, "console" or "json".
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
	// Output receives log lines. Defaults to os.Stderr so stdout only carries
	// rendered headlines.
	Output io.Writer `mapstructure:"-" yaml:"-"`
}
