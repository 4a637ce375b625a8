// Package logging provides structured logging for the site tooling.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Logger is the interface for structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field is a single key/value pair attached to a log record.
type Field = slog.Attr

func String(key, value string) Field { return slog.String(key, value) }

func Int(key string, value int) Field { return slog.Int(key, value) }

func Duration(key string, value time.Duration) Field { return slog.Duration(key, value) }

// Err records err under the "error" key.
func Err(err error) Field { return slog.Any("error", err) }

// SlogLogger implements Logger on top of a slog handler.
type SlogLogger struct {
	logger *slog.Logger
}

type loggerConfig struct {
	level  slog.Level
	output io.Writer
	json   bool
}

// LoggerOption configures NewSlogLogger.
type LoggerOption func(*loggerConfig)

// WithLevel drops records below level.
func WithLevel(level slog.Level) LoggerOption {
	return func(c *loggerConfig) { c.level = level }
}

// WithOutput sets the writer records go to. The default is stdout.
func WithOutput(w io.Writer) LoggerOption {
	return func(c *loggerConfig) { c.output = w }
}

// WithJSON writes one JSON object per record instead of key=value text.
func WithJSON() LoggerOption {
	return func(c *loggerConfig) { c.json = true }
}

// NewSlogLogger creates a logger writing text records at info level unless
// configured otherwise.
func NewSlogLogger(opts ...LoggerOption) *SlogLogger {
	config := loggerConfig{level: slog.LevelInfo, output: os.Stdout}
	for _, opt := range opts {
		opt(&config)
	}

	handlerOpts := &slog.HandlerOptions{Level: config.level}
	var handler slog.Handler = slog.NewTextHandler(config.output, handlerOpts)
	if config.json {
		handler = slog.NewJSONHandler(config.output, handlerOpts)
	}
	return &SlogLogger{logger: slog.New(handler)}
}

func (l *SlogLogger) log(level slog.Level, msg string, fields []Field) {
	l.logger.LogAttrs(context.Background(), level, msg, fields...)
}

func (l *SlogLogger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields) }
func (l *SlogLogger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields) }
func (l *SlogLogger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields) }
func (l *SlogLogger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields) }

// With returns a logger that adds fields to every record.
func (l *SlogLogger) With(fields ...Field) Logger {
	args := make([]any, len(fields))
	for i, f := range fields {
		args[i] = f
	}
	return &SlogLogger{logger: l.logger.With(args...)}
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (l NopLogger) With(...Field) Logger { return l }

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is info.
func ParseLevel(s string) slog.Level {
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

type holder struct{ Logger }

var std atomic.Pointer[holder]

func init() {
	std.Store(&holder{NewSlogLogger()})
}

// SetDefault replaces the logger L falls back to.
func SetDefault(logger Logger) {
	std.Store(&holder{logger})
}

type contextKey struct{}

// ContextWithLogger returns a copy of ctx carrying logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// L returns the logger stored in ctx, or the default logger.
func L(ctx context.Context) Logger {
	if logger, ok := ctx.Value(contextKey{}).(Logger); ok {
		return logger
	}
	return std.Load().Logger
}
