package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	defaultLogger *Logger
	once          sync.Once
)

// LogLevel defines the log levels
type LogLevel int

// Log levels
const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger wraps slog functionality
type Logger struct {
	slogger *slog.Logger
}

// LogOption defines functional options for configuring the logger
type LogOption func(*logConfig)

type logConfig struct {
	level      LogLevel
	output     io.Writer
	addSource  bool
	jsonFormat bool
}

// WithLevel sets the minimum log level
func WithLevel(level LogLevel) LogOption {
	return func(c *logConfig) {
		c.level = level
	}
}

// WithOutput sets the output writer
func WithOutput(w io.Writer) LogOption {
	return func(c *logConfig) {
		c.output = w
	}
}

// WithSource adds source code location to logs
func WithSource() LogOption {
	return func(c *logConfig) {
		c.addSource = true
	}
}

// WithJSONFormat sets log format to JSON
func WithJSONFormat(enabled bool) LogOption {
	return func(c *logConfig) {
		c.jsonFormat = enabled
	}
}

// ParseLevel maps LOG_LEVEL values ("debug", "info", "warn", "error") to a LogLevel.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Options builds the logger options from LOG_LEVEL, LOG_FORMAT ("json" or
// "text") and LOG_SOURCE.
func Options(level, format string, source bool) []LogOption {
	opts := []LogOption{
		WithLevel(ParseLevel(level)),
		WithJSONFormat(!strings.EqualFold(strings.TrimSpace(format), "text")),
	}
	if source {
		opts = append(opts, WithSource())
	}
	return opts
}

// GetLevel converts our LogLevel to slog.Level
func (l LogLevel) GetLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a new configured logger
func New(opts ...LogOption) *Logger {
	config := &logConfig{
		level:      LevelInfo,
		output:     os.Stdout,
		jsonFormat: true,
	}

	for _, opt := range opts {
		opt(config)
	}

	handlerOptions := &slog.HandlerOptions{
		Level:     config.level.GetLevel(),
		AddSource: config.addSource,
	}

	var handler slog.Handler
	if config.jsonFormat {
		handler = slog.NewJSONHandler(config.output, handlerOptions)
	} else {
		handler = slog.NewTextHandler(config.output, handlerOptions)
	}

	return &Logger{
		slogger: slog.New(handler),
	}
}

// Default returns the default singleton logger
func Default() *Logger {
	once.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New()
		}
	})
	return defaultLogger
}

// SetDefault replaces the default logger used by the package-level helpers.
func SetDefault(l *Logger) {
	once.Do(func() {})
	defaultLogger = l
}

func (l *Logger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}

// With returns a logger with the given attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slogger: l.slogger.With(args...),
	}
}

// Package-level shortcuts that use the default logger

func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

// With returns the default logger with the given attributes
func With(args ...any) *Logger {
	return Default().With(args...)
}
