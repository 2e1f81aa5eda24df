package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode represents the class of a tile error
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeConfig
	ErrCodeToolkit
	ErrCodeSpawn
	ErrCodePlatform
	ErrCodeWindowNotFound
	ErrCodeUnsupported
	ErrCodeInternal
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeConfig:
		return "CONFIG"
	case ErrCodeToolkit:
		return "TOOLKIT"
	case ErrCodeSpawn:
		return "SPAWN"
	case ErrCodePlatform:
		return "PLATFORM"
	case ErrCodeWindowNotFound:
		return "WINDOW_NOT_FOUND"
	case ErrCodeUnsupported:
		return "UNSUPPORTED"
	case ErrCodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// TileError is an error raised while configuring, showing or activating tiles
type TileError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Retryable bool              // whether the error is retryable
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *TileError) Error() string {
	if e == nil {
		return "tile error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	if e.Retryable {
		parts = append(parts, "retryable=true")
	}

	// Context keys are sorted so the message is deterministic
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "tile error" + contextStr
}

func (e *TileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *TileError by code, or the wrapped error
func (e *TileError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*TileError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// IsRetryable returns whether the error is retryable
func (e *TileError) IsRetryable() bool {
	if e == nil {
		return false
	}
	return e.Retryable
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *TileError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *TileError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *TileError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been shared between goroutines.
func (e *TileError) WithContext(key, value string) *TileError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewTileError creates a new tile error with the given parameters
func NewTileError(op string, err error, code ErrorCode) *TileError {
	return &TileError{
		Op:        op,
		Err:       err,
		Code:      code,
		Retryable: isRetryableCode(code),
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewTileErrorWithContext creates a new tile error with additional context
func NewTileErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *TileError {
	tileErr := NewTileError(op, err, code)
	if context != nil {
		tileErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			tileErr.Context[k] = v
		}
	}
	return tileErr
}

// isRetryableCode reports whether errors of the given class may succeed on a later attempt.
// Only a window that is not mapped yet qualifies; everything else needs outside intervention.
func isRetryableCode(code ErrorCode) bool {
	return code == ErrCodeWindowNotFound
}

// CodeOf returns the code of the first TileError in err's chain
func CodeOf(err error) ErrorCode {
	var tileErr *TileError
	if errors.As(err, &tileErr) {
		return tileErr.Code
	}
	return ErrCodeUnknown
}

// IsConfig checks if the error is a configuration error
func IsConfig(err error) bool {
	return CodeOf(err) == ErrCodeConfig
}

// IsToolkit checks if the error came from the windowing toolkit
func IsToolkit(err error) bool {
	return CodeOf(err) == ErrCodeToolkit
}

// IsSpawn checks if the error is a command launch error
func IsSpawn(err error) bool {
	return CodeOf(err) == ErrCodeSpawn
}

// IsWindowNotFound checks if the error reports a window that is not mapped yet
func IsWindowNotFound(err error) bool {
	return CodeOf(err) == ErrCodeWindowNotFound
}

// IsUnsupported checks if the error reports a feature the platform lacks
func IsUnsupported(err error) bool {
	return CodeOf(err) == ErrCodeUnsupported
}

// IsRetryable checks if the error is retryable
func IsRetryable(err error) bool {
	var tileErr *TileError
	if errors.As(err, &tileErr) {
		return tileErr.Retryable
	}
	return false
}
