package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the structured logger used across the application.
// Fields are alternating key/value pairs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// Format selects the output encoding of a ZerologLogger
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// ZerologLogger implements Logger on top of zerolog
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewLogger creates a logger writing to w at the given level ("trace", "debug", "info", "warn", "error").
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string, format Format) *ZerologLogger {
	if w == nil {
		w = os.Stderr
	}
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	// zerolog's global floor starts at debug; per-logger levels still apply.
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}

	return &ZerologLogger{
		zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

// NewDefaultLogger creates a JSON logger on stderr at info level
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, "info", FormatJSON)
}

// fieldsToMap converts the variadic fields slice to a map.
// Expected format: key1, value1, key2, value2, ...
func fieldsToMap(fields []interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			result[fmt.Sprintf("field_%d", i/2)] = fields[i]
			break
		}
		if key, ok := fields[i].(string); ok {
			result[key] = fields[i+1]
		} else {
			result[fmt.Sprintf("field_%d", i/2)] = fields[i]
			result[fmt.Sprintf("field_%d_value", i/2)] = fields[i+1]
		}
	}

	return result
}

func (l *ZerologLogger) emit(e *zerolog.Event, msg string, fields []interface{}) {
	if len(fields) > 0 {
		e = e.Fields(fieldsToMap(fields))
	}
	e.Msg(msg)
}

// Trace logs below debug level
func (l *ZerologLogger) Trace(msg string, fields ...interface{}) {
	l.emit(l.zl.Trace(), msg, fields)
}

func (l *ZerologLogger) Debug(msg string, fields ...interface{}) {
	l.emit(l.zl.Debug(), msg, fields)
}

func (l *ZerologLogger) Info(msg string, fields ...interface{}) {
	l.emit(l.zl.Info(), msg, fields)
}

func (l *ZerologLogger) Warn(msg string, fields ...interface{}) {
	l.emit(l.zl.Warn(), msg, fields)
}

func (l *ZerologLogger) Error(msg string, fields ...interface{}) {
	l.emit(l.zl.Error(), msg, fields)
}

// With returns a child logger that adds the given fields to every entry
func (l *ZerologLogger) With(fields ...interface{}) *ZerologLogger {
	return &ZerologLogger{zl: l.zl.With().Fields(fieldsToMap(fields)).Logger()}
}

// ClassifiedError is implemented by errors that carry a code and context
// (declared here to avoid an import cycle with the errors package)
type ClassifiedError interface {
	Error() string
	GetCode() string
	IsRetryable() bool
	GetContext() map[string]string
	GetTimestamp() time.Time
}

// LogError logs err with its classification and the given context
func LogError(logger Logger, err error, operation string, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{"operation", operation}

	var classified ClassifiedError
	if errors.As(err, &classified) {
		fields = append(fields,
			"error_code", classified.GetCode(),
			"retryable", classified.IsRetryable(),
		)
		for k, v := range classified.GetContext() {
			fields = append(fields, k, v)
		}
	} else {
		fields = append(fields, "error_type", fmt.Sprintf("%T", err))
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Error(err.Error(), fields...)
}
