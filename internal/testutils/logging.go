package testutils

import "sync"

// TestingT is a minimal interface that matches the methods we need from testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// FieldsToMap safely converts a slice of alternating key-value pairs to a map.
// It performs safe type assertions and handles malformed entries gracefully.
// This is commonly used in logging tests to validate structured log fields.
func FieldsToMap(t TestingT, fields []any) map[string]any {
	fieldsMap := make(map[string]any)

	for i := 0; i < len(fields); i += 2 {
		// Ensure we have both key and value
		if i+1 >= len(fields) {
			t.Errorf("Malformed fields slice: missing value for key at index %d", i)
			continue
		}

		// Safe type assertion for the key
		key, ok := fields[i].(string)
		if !ok {
			t.Errorf("Malformed fields slice: key at index %d is not a string, got %T", i, fields[i])
			continue
		}

		// Store the key-value pair
		fieldsMap[key] = fields[i+1]
	}

	return fieldsMap
}

// LogCall records one call made against a CaptureLogger.
type LogCall struct {
	Message string
	Fields  []any
}

// CaptureLogger records structured log calls for assertions in tests. It
// satisfies the logging.Logger interface without importing it, so packages
// under test can use it without creating import cycles.
type CaptureLogger struct {
	mu         sync.Mutex
	debugCalls []LogCall
	infoCalls  []LogCall
	warnCalls  []LogCall
	errorCalls []LogCall
}

// NewCaptureLogger creates an empty capture logger
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{}
}

func (c *CaptureLogger) Debug(msg string, fields ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debugCalls = append(c.debugCalls, LogCall{Message: msg, Fields: fields})
}

func (c *CaptureLogger) Info(msg string, fields ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infoCalls = append(c.infoCalls, LogCall{Message: msg, Fields: fields})
}

func (c *CaptureLogger) Warn(msg string, fields ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnCalls = append(c.warnCalls, LogCall{Message: msg, Fields: fields})
}

func (c *CaptureLogger) Error(msg string, fields ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCalls = append(c.errorCalls, LogCall{Message: msg, Fields: fields})
}

// DebugCalls returns a copy of the recorded Debug calls
func (c *CaptureLogger) DebugCalls() []LogCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LogCall(nil), c.debugCalls...)
}

// InfoCalls returns a copy of the recorded Info calls
func (c *CaptureLogger) InfoCalls() []LogCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LogCall(nil), c.infoCalls...)
}

// WarnCalls returns a copy of the recorded Warn calls
func (c *CaptureLogger) WarnCalls() []LogCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LogCall(nil), c.warnCalls...)
}

// ErrorCalls returns a copy of the recorded Error calls
func (c *CaptureLogger) ErrorCalls() []LogCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LogCall(nil), c.errorCalls...)
}
