package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"desktiles/internal/testutils"
)

// Mock classified error for testing
type mockClassifiedError struct {
	message   string
	code      string
	retryable bool
	context   map[string]string
}

func (m *mockClassifiedError) Error() string { return m.message }
func (m *mockClassifiedError) GetCode() string { return m.code }
func (m *mockClassifiedError) IsRetryable() bool { return m.retryable }
func (m *mockClassifiedError) GetContext() map[string]string { return m.context }
func (m *mockClassifiedError) GetTimestamp() time.Time { return time.Time{} }

// Mock Logger for testing
type mockLogger struct {
	debugCalls []logCall
	infoCalls  []logCall
	warnCalls  []logCall
	errorCalls []logCall
}

type logCall struct {
	msg    string
	fields []interface{}
}

func (m *mockLogger) Debug(msg string, fields ...interface{}) {
	m.debugCalls = append(m.debugCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Info(msg string, fields ...interface{}) {
	m.infoCalls = append(m.infoCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Warn(msg string, fields ...interface{}) {
	m.warnCalls = append(m.warnCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Error(msg string, fields ...interface{}) {
	m.errorCalls = append(m.errorCalls, logCall{msg: msg, fields: fields})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Failed to parse JSON log entry: %v, line: %q", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger() returned nil")
	}
	if _, ok := logger.(*ZerologLogger); !ok {
		t.Errorf("NewDefaultLogger() returned %T, expected *ZerologLogger", logger)
	}
}

func TestZerologLogger_LogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug", FormatJSON)

	tests := []struct {
		name           string
		logFunc        func(string, ...interface{})
		message        string
		fields         []interface{}
		levelToken     string
		expectedFields map[string]interface{}
	}{
		{"Debug", logger.Debug, "debug message", []interface{}{"key", "value"}, "debug", map[string]interface{}{"key": "value"}},
		{"Info", logger.Info, "info message", []interface{}{"count", 42}, "info", map[string]interface{}{"count": float64(42)}},
		{"Warn", logger.Warn, "warn message", nil, "warn", map[string]interface{}{}},
		{"Error", logger.Error, "error message", []interface{}{"error", "test error"}, "error", map[string]interface{}{"error": "test error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(tt.message, tt.fields...)

			entries := decodeLines(t, &buf)
			if len(entries) != 1 {
				t.Fatalf("Expected 1 entry, got %d", len(entries))
			}
			entry := entries[0]

			if entry["time"] == nil {
				t.Error("Expected log entry to have time field")
			}
			if entry["level"] != tt.levelToken {
				t.Errorf("Expected level %q, got %v", tt.levelToken, entry["level"])
			}
			if entry["message"] != tt.message {
				t.Errorf("Expected message %q, got %v", tt.message, entry["message"])
			}
			for key, expected := range tt.expectedFields {
				if entry[key] != expected {
					t.Errorf("Expected field %q to be %v, got %v", key, expected, entry[key])
				}
			}
		})
	}
}

func TestZerologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "shown" {
		t.Errorf("Expected only the warn entry, got %v", entries)
	}
}

func TestZerologLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "loud", FormatJSON)

	logger.Debug("hidden")
	logger.Info("shown")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(entries))
	}
}

func TestZerologLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", FormatConsole)

	logger.Info("tile created", "label", "Mote")

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console format should not emit JSON: %q", out)
	}
	if !strings.Contains(out, "tile created") || !strings.Contains(out, "Mote") {
		t.Errorf("console output missing content: %q", out)
	}
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", FormatJSON).With("tile", "Chromium")

	logger.Info("clicked")

	entries := decodeLines(t, &buf)
	if entries[0]["tile"] != "Chromium" {
		t.Errorf("Expected inherited field, got %v", entries[0])
	}
}

func TestFieldsToMap_Malformed(t *testing.T) {
	got := fieldsToMap([]interface{}{"ok", 1, 7, "value", "dangling"})

	if got["ok"] != 1 {
		t.Errorf("ok = %v", got["ok"])
	}
	if got["field_1"] != 7 || got["field_1_value"] != "value" {
		t.Errorf("non-string key not preserved: %v", got)
	}
	if got["field_2"] != "dangling" {
		t.Errorf("dangling value not preserved: %v", got)
	}
}

func TestLogError_WithClassifiedError(t *testing.T) {
	mock := &mockLogger{}
	err := &mockClassifiedError{
		message: "spawn failed",
		code:    "SPAWN",
		context: map[string]string{"command": "echo hi"},
	}

	LogError(mock, err, "activate", map[string]interface{}{"label": "Chromium"})

	if len(mock.errorCalls) != 1 {
		t.Fatalf("Expected 1 error call, got %d", len(mock.errorCalls))
	}
	call := mock.errorCalls[0]
	if call.msg != "spawn failed" {
		t.Errorf("msg = %q", call.msg)
	}

	fields := testutils.FieldsToMap(t, call.fields)
	expected := map[string]interface{}{
		"operation":  "activate",
		"error_code": "SPAWN",
		"retryable":  false,
		"command":    "echo hi",
		"label":      "Chromium",
	}
	for k, v := range expected {
		if fields[k] != v {
			t.Errorf("field %q = %v, want %v", k, fields[k], v)
		}
	}
}

func TestLogError_WithWrappedClassifiedError(t *testing.T) {
	mock := &mockLogger{}
	inner := &mockClassifiedError{message: "window missing", code: "WINDOW_NOT_FOUND", retryable: true}
	err := fmt.Errorf("apply hints: %w", inner)

	LogError(mock, err, "hints", nil)

	call := mock.errorCalls[0]
	if call.msg != "apply hints: window missing" {
		t.Errorf("msg = %q", call.msg)
	}
	fields := testutils.FieldsToMap(t, call.fields)
	if fields["error_code"] != "WINDOW_NOT_FOUND" {
		t.Errorf("error_code = %v, want WINDOW_NOT_FOUND", fields["error_code"])
	}
	if fields["retryable"] != true {
		t.Errorf("retryable = %v, want true", fields["retryable"])
	}
	if _, ok := fields["error_type"]; ok {
		t.Errorf("wrapped classified error logged as plain error: %v", fields)
	}
}

func TestLogError_WithRegularError(t *testing.T) {
	mock := &mockLogger{}
	LogError(mock, errors.New("boom"), "load", nil)

	fields := testutils.FieldsToMap(t, mock.errorCalls[0].fields)
	if fields["error_type"] != "*errors.errorString" {
		t.Errorf("error_type = %v", fields["error_type"])
	}
}

func TestWailsLoggerAdapter(t *testing.T) {
	mock := &mockLogger{}
	adapter := NewWailsLoggerAdapter(mock)

	adapter.Print("print")
	adapter.Trace("trace")
	adapter.Debug("debug")
	adapter.Info("info")
	adapter.Warning("warning")
	adapter.Error("error")
	adapter.Fatal("fatal")

	if len(mock.infoCalls) != 1 {
		t.Errorf("Expected 1 info call, got %d", len(mock.infoCalls))
	}
	// print, trace (mockLogger has no trace level) and debug
	if len(mock.debugCalls) != 3 {
		t.Errorf("Expected 3 debug calls, got %d", len(mock.debugCalls))
	}
	if len(mock.warnCalls) != 1 {
		t.Errorf("Expected 1 warn call, got %d", len(mock.warnCalls))
	}
	if len(mock.errorCalls) != 2 {
		t.Fatalf("Expected 2 error calls, got %d", len(mock.errorCalls))
	}

	fatal := testutils.FieldsToMap(t, mock.errorCalls[1].fields)
	if fatal["source"] != "wails" || fatal["fatal"] != true {
		t.Errorf("unexpected fatal fields: %v", fatal)
	}
}

func TestWailsLoggerAdapter_ZerologLevels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewWailsLoggerAdapter(NewLogger(&buf, "trace", FormatJSON))

	adapter.Trace("asset served")
	adapter.Print("starting")
	adapter.Warning("slow dom")
	adapter.Fatal("no display")

	entries := decodeLines(t, &buf)
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}
	wantLevels := []string{"trace", "debug", "warn", "error"}
	for i, want := range wantLevels {
		if entries[i]["level"] != want {
			t.Errorf("entry %d level = %v, want %s", i, entries[i]["level"], want)
		}
		if entries[i]["source"] != "wails" {
			t.Errorf("entry %d source = %v, want wails", i, entries[i]["source"])
		}
	}
	if entries[3]["fatal"] != true {
		t.Errorf("fatal entry not marked: %v", entries[3])
	}
}

func TestWailsLoggerAdapter_TraceFilteredAtDebug(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewWailsLoggerAdapter(NewLogger(&buf, "debug", FormatJSON))

	adapter.Trace("asset served")
	adapter.Debug("bound methods")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "bound methods" {
		t.Errorf("trace output leaked at debug level: %v", entries)
	}
}

func TestNewWailsLoggerAdapter_NilLogger(t *testing.T) {
	adapter := NewWailsLoggerAdapter(nil)
	if adapter.logger == nil {
		t.Error("expected default logger to be substituted")
	}
}
