package logging

import (
	"fmt"
	"strings"
)

// MockLogger captures log entries for verification in tests. Loggers
// derived with WithError/WithField/WithFields write into the root
// mock's entry list, so a test always sees everything that was logged.
type MockLogger struct {
	root          *MockLogger
	Entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger returns an empty root mock.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) sink() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)

	sink := m.sink()
	sink.Entries = append(sink.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.pendingError,
	})
}

// Debug records a debug-level entry.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info records an info-level entry.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn records a warn-level entry.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error records an error-level entry.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

// WithError returns a derived logger carrying an error.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		root:          m.sink(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a derived logger carrying one extra field.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a derived logger carrying extra fields.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	combined := make([]Field, 0, len(m.pendingFields)+len(fields))
	combined = append(combined, m.pendingFields...)
	combined = append(combined, fields...)

	return &MockLogger{
		root:          m.sink(),
		pendingError:  m.pendingError,
		pendingFields: combined,
	}
}

// Fatalf records a fatal-level entry. Unlike a real logger it does not
// exit, so tests can assert on it.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

// HasEntry reports whether any captured entry at the given level
// contains the substring in its message.
func (m *MockLogger) HasEntry(level, substring string) bool {
	for _, entry := range m.sink().Entries {
		if entry.Level == level && strings.Contains(entry.Message, substring) {
			return true
		}
	}
	return false
}

// EntriesAtLevel returns the captured entries for one level.
func (m *MockLogger) EntriesAtLevel(level string) []LogEntry {
	var out []LogEntry
	for _, entry := range m.sink().Entries {
		if entry.Level == level {
			out = append(out, entry)
		}
	}
	return out
}
