// Package logging wraps zerolog with key-value helpers and a process-wide logger.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with key-value convenience methods.
type Logger struct {
	zl zerolog.Logger
}

var global = NewDevelopment(zerolog.DebugLevel)

// NewProduction creates a logger with JSON output on stdout.
func NewProduction(level zerolog.Level) *Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewDevelopment creates a logger with console output on stdout.
func NewDevelopment(level zerolog.Level) *Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, level)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// New picks the output format by name: "json" for production output,
// anything else for console output.
func New(format, level string) *Logger {
	lvl := ParseLevel(level)
	if strings.EqualFold(format, "json") {
		return NewProduction(lvl)
	}
	return NewDevelopment(lvl)
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// SetGlobal replaces the process-wide logger.
func SetGlobal(logger *Logger) {
	global = logger
}

// Global returns the process-wide logger.
func Global() *Logger {
	return global
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	write(l.zl.Debug(), msg, fields)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	write(l.zl.Info(), msg, fields)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	write(l.zl.Warn(), msg, fields)
}

func (l *Logger) Error(msg string, fields ...interface{}) {
	write(l.zl.Error(), msg, fields)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(msg string, fields ...interface{}) {
	write(l.zl.Fatal(), msg, fields)
}

// With returns a child logger carrying the given key-value pairs.
func (l *Logger) With(fields ...interface{}) *Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &Logger{zl: ctx.Logger()}
}

// WithContext returns a logger carrying the request ID stored in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.With("request_id", id)
	}
	return l
}

func write(e *zerolog.Event, msg string, fields []interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if err, ok := fields[i+1].(error); ok {
			e.Str(key, err.Error())
			continue
		}
		e.Interface(key, fields[i+1])
	}
	e.Msg(msg)
}

func Debug(msg string, fields ...interface{}) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...interface{}) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...interface{}) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...interface{}) {
	global.Error(msg, fields...)
}

func Fatal(msg string, fields ...interface{}) {
	global.Fatal(msg, fields...)
}
