// Package logger provides logging functionality for the application.
package logger

// Default configuration values.
const (
	// DefaultLevel is the default logging level. The CLI keeps stderr quiet
	// unless something degrades.
	DefaultLevel = WarnLevel
	// DefaultEncoding is the default log encoding format.
	DefaultEncoding = "console"
	// DefaultDevelopment is the default development mode setting.
	DefaultDevelopment = false
)

// Field keys shared by the structured logging helpers.
const (
	fieldDuration    = "duration"
	fieldError       = "error"
	fieldComponent   = "component"
	fieldSource      = "source"
	fieldCategory    = "category"
	fieldRunID       = "run_id"
	fieldVersion     = "version"
	fieldEnvironment = "environment"
)
