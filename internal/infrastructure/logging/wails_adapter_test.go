package logging

import (
	"testing"

	"conciliador/internal/testutils"
)

func TestWailsAdapterLevelMapping(t *testing.T) {
	capture := testutils.NewCaptureLogger()
	adapter := NewWailsLoggerAdapter(capture)

	adapter.Print("print line")
	adapter.Trace("trace line")
	adapter.Debug("debug line")
	adapter.Info("info line")
	adapter.Warning("warning line")
	adapter.Error("error line")
	adapter.Fatal("fatal line")

	if got := len(capture.InfoCalls()); got != 2 {
		t.Errorf("expected Print and Info at INFO, got %d info calls", got)
	}
	if got := len(capture.DebugCalls()); got != 2 {
		t.Errorf("expected Trace and Debug at DEBUG, got %d debug calls", got)
	}
	if got := len(capture.WarnCalls()); got != 1 {
		t.Errorf("expected Warning at WARN, got %d warn calls", got)
	}
	// Fatal must not exit; it lands at ERROR alongside Error.
	if got := len(capture.ErrorCalls()); got != 2 {
		t.Errorf("expected Error and Fatal at ERROR, got %d error calls", got)
	}
}

func TestWailsAdapterTagsOrigin(t *testing.T) {
	capture := testutils.NewCaptureLogger()
	adapter := NewWailsLoggerAdapter(capture)

	adapter.Info("window created")

	calls := capture.InfoCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 info call, got %d", len(calls))
	}
	fields := testutils.FieldsToMap(t, calls[0].Fields)
	if fields["origin"] != "wails-runtime" {
		t.Errorf("origin field = %v, want wails-runtime", fields["origin"])
	}
}

func TestWailsAdapterErrorCarriesCode(t *testing.T) {
	capture := testutils.NewCaptureLogger()
	adapter := NewWailsLoggerAdapter(capture)

	adapter.Error("assetserver failure")
	adapter.Fatal("bridge lost")

	calls := capture.ErrorCalls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 error calls, got %d", len(calls))
	}

	errFields := testutils.FieldsToMap(t, calls[0].Fields)
	if errFields["error_code"] != "INTERNAL" {
		t.Errorf("error_code field = %v, want INTERNAL", errFields["error_code"])
	}

	fatalFields := testutils.FieldsToMap(t, calls[1].Fields)
	if fatalFields["runtime_level"] != "fatal" {
		t.Errorf("runtime_level field = %v, want fatal", fatalFields["runtime_level"])
	}
}

func TestWailsAdapterNormalizesTrailingNewlines(t *testing.T) {
	capture := testutils.NewCaptureLogger()
	adapter := NewWailsLoggerAdapter(capture)

	adapter.Info("dev server started\r\n")

	calls := capture.InfoCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 info call, got %d", len(calls))
	}
	if calls[0].Message != "dev server started" {
		t.Errorf("message = %q, trailing newline should be stripped", calls[0].Message)
	}
}

func TestWailsAdapterNilLoggerFallsBack(t *testing.T) {
	adapter := NewWailsLoggerAdapter(nil)
	if adapter == nil {
		t.Fatal("NewWailsLoggerAdapter(nil) returned nil")
	}
	// Must not panic on the default logger.
	captureOutput(func() {
		adapter.Info("fallback")
	})
}
