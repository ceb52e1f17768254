package logging

import (
	"strings"

	shellerrors "conciliador/internal/infrastructure/errors"
)

// WailsLoggerAdapter routes Wails runtime output into the shell's structured
// logger so framework messages land in the same diagnostic stream as
// supervisor and backend lines. Every entry is tagged with its origin, which
// keeps window-runtime noise filterable from backend output.
type WailsLoggerAdapter struct {
	logger Logger
}

// NewWailsLoggerAdapter wraps the shell logger for use as the Wails runtime logger
func NewWailsLoggerAdapter(logger Logger) *WailsLoggerAdapter {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &WailsLoggerAdapter{logger: logger}
}

// normalizeRuntimeMessage strips the trailing newlines the Wails runtime
// leaves on some messages so each JSON log entry stays one line.
func normalizeRuntimeMessage(message string) string {
	return strings.TrimRight(message, "\r\n")
}

// Print carries no level in Wails; treat it as informational output.
func (w *WailsLoggerAdapter) Print(message string) {
	w.logger.Info(normalizeRuntimeMessage(message), "origin", "wails-runtime")
}

// Trace has no counterpart in the shell logger; fold it into DEBUG with the
// original level preserved as a field.
func (w *WailsLoggerAdapter) Trace(message string) {
	w.logger.Debug(normalizeRuntimeMessage(message), "origin", "wails-runtime", "runtime_level", "trace")
}

func (w *WailsLoggerAdapter) Debug(message string) {
	w.logger.Debug(normalizeRuntimeMessage(message), "origin", "wails-runtime")
}

func (w *WailsLoggerAdapter) Info(message string) {
	w.logger.Info(normalizeRuntimeMessage(message), "origin", "wails-runtime")
}

func (w *WailsLoggerAdapter) Warning(message string) {
	w.logger.Warn(normalizeRuntimeMessage(message), "origin", "wails-runtime")
}

// Error tags the entry with the internal error code so runtime failures grep
// the same way as supervisor and command failures.
func (w *WailsLoggerAdapter) Error(message string) {
	w.logger.Error(normalizeRuntimeMessage(message), "origin", "wails-runtime",
		"error_code", shellerrors.ErrCodeInternal.String())
}

// Fatal must not exit the process: window teardown drives shutdown, and an
// os.Exit here would skip the supervisor's Stop and orphan the backend. Log
// at ERROR with the original severity preserved.
func (w *WailsLoggerAdapter) Fatal(message string) {
	w.logger.Error(normalizeRuntimeMessage(message), "origin", "wails-runtime",
		"error_code", shellerrors.ErrCodeInternal.String(),
		"runtime_level", "fatal")
}
