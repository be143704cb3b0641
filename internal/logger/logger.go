// Package logger provides logging functionality for the application.
package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Interface defines the logger interface.
type Interface interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
	Fatal(msg string, fields ...any)
	With(fields ...any) Interface
	// Structured logging helpers
	WithDuration(duration time.Duration) Interface
	WithError(err error) Interface
	WithComponent(component string) Interface
	WithSource(source string) Interface
	WithCategory(category string) Interface
	WithRunID(runID string) Interface
	WithVersion(version string) Interface
	WithEnvironment(env string) Interface
}

// Logger implements the Interface.
type Logger struct {
	zapLogger *zap.Logger
}

// logLevels maps levels to zapcore.Level
var logLevels = map[Level]zapcore.Level{
	DebugLevel: zapcore.DebugLevel,
	InfoLevel:  zapcore.InfoLevel,
	WarnLevel:  zapcore.WarnLevel,
	ErrorLevel: zapcore.ErrorLevel,
	FatalLevel: zapcore.FatalLevel,
}

// New creates a new logger instance.
func New(config *Config) (Interface, error) {
	if config == nil {
		config = &Config{}
	}

	level := config.Level
	if level == "" {
		level = DefaultLevel
	}
	zapLevel, ok := logLevels[level]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	encoding := config.Encoding
	if encoding == "" {
		encoding = DefaultEncoding
	}

	// Create encoder config
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if encoding == "json" {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	if config.Development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
		}
		encoderConfig.ConsoleSeparator = " | "
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var encoder zapcore.Encoder
	switch encoding {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, encoding)
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zapLevel)

	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
	if config.Development {
		opts = append(opts, zap.Development())
	}

	return &Logger{zapLogger: zap.New(core, opts...)}, nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...any) {
	l.zapLogger.Debug(msg, toZapFields(fields)...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...any) {
	l.zapLogger.Info(msg, toZapFields(fields)...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...any) {
	l.zapLogger.Warn(msg, toZapFields(fields)...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...any) {
	l.zapLogger.Error(msg, toZapFields(fields)...)
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(msg string, fields ...any) {
	l.zapLogger.Fatal(msg, toZapFields(fields)...)
}

// With creates a new logger with the given fields.
func (l *Logger) With(fields ...any) Interface {
	return &Logger{
		zapLogger: l.zapLogger.With(toZapFields(fields)...),
	}
}

// WithDuration adds a duration to the logger.
func (l *Logger) WithDuration(duration time.Duration) Interface {
	return l.With(fieldDuration, duration)
}

// WithError adds an error to the logger.
func (l *Logger) WithError(err error) Interface {
	return l.With(fieldError, err)
}

// WithComponent adds a component name to the logger.
func (l *Logger) WithComponent(component string) Interface {
	return l.With(fieldComponent, component)
}

// WithSource adds a news source key to the logger.
func (l *Logger) WithSource(source string) Interface {
	return l.With(fieldSource, source)
}

// WithCategory adds a news category to the logger.
func (l *Logger) WithCategory(category string) Interface {
	return l.With(fieldCategory, category)
}

// WithRunID adds the invocation id to the logger.
func (l *Logger) WithRunID(runID string) Interface {
	return l.With(fieldRunID, runID)
}

// WithVersion adds a version to the logger.
func (l *Logger) WithVersion(version string) Interface {
	return l.With(fieldVersion, version)
}

// WithEnvironment adds an environment to the logger.
func (l *Logger) WithEnvironment(env string) Interface {
	return l.With(fieldEnvironment, env)
}

// toZapFields converts key/value pairs and zap.Fields into zap fields.
// A dangling key or a non-string key is kept under "invalid_field" rather
// than dropped.
func toZapFields(fields []any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	zapFields := make([]zap.Field, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		switch field := fields[i].(type) {
		case zap.Field:
			zapFields = append(zapFields, field)
		case string:
			if i+1 >= len(fields) {
				zapFields = append(zapFields, zap.String("invalid_field", field), zap.Error(ErrInvalidFields))
				continue
			}
			zapFields = append(zapFields, zap.Any(field, fields[i+1]))
			i++
		default:
			zapFields = append(zapFields,
				zap.String("invalid_field", fmt.Sprintf("%T", field)),
				zap.Error(ErrInvalidFields),
			)
		}
	}

	return zapFields
}
