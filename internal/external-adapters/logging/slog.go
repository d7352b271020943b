// Package logging adapts log/slog to the domain Logger interface.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/ochairo/binprobe/internal/domain/interfaces"
)

// Logger writes domain log calls through a *slog.Logger
type Logger struct {
	slog *slog.Logger
}

// New creates a logger writing to w with the configured level and format
func New(w io.Writer, cfg entities.LogConfig) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{slog: slog.New(handler)}
}

// With returns a logger that adds fields to every record
func (l *Logger) With(fields ...interfaces.Field) interfaces.Logger {
	return &Logger{slog: l.slog.With(attrs(fields)...)}
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.log(slog.LevelDebug, msg, fields)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.log(slog.LevelInfo, msg, fields)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.log(slog.LevelWarn, msg, fields)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.log(slog.LevelError, msg, fields)
}

func (l *Logger) log(level slog.Level, msg string, fields []interfaces.Field) {
	l.slog.Log(context.Background(), level, msg, attrs(fields)...)
}

func attrs(fields []interfaces.Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}

// parseLevel converts a string level to slog.Level
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
