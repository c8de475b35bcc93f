// Package logger provides structured logging for the CLI and file-loading
// collaborators. The scanner core itself never logs.
package logger

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog with a fixed component field.
type Logger struct {
	*slog.Logger
	component string
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	AddSource bool
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:     slog.LevelWarn,
		AddSource: false,
	}
}

// New creates a new logger for a specific component. Output goes to stderr
// so rendered token listings on stdout stay machine-readable.
func New(component string, cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				t := a.Value.Time()
				a.Value = slog.StringValue(t.Format(time.RFC3339))
			}
			return a
		},
	}

	handler := slog.NewJSONHandler(os.Stderr, opts)
	baseLogger := slog.New(handler)

	logger := baseLogger.With(slog.String("component", component))

	return &Logger{
		Logger:    logger,
		component: component,
	}
}

// WithField returns a logger with an extra field attached to every entry.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(slog.String(key, value)),
		component: l.component,
	}
}
