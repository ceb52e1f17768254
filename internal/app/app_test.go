package app

import (
	"context"
	"strings"
	"sync"
	"testing"

	"conciliador/internal/config"
	"conciliador/internal/infrastructure/errors"
	"conciliador/internal/netutil"
	"conciliador/internal/testutils"
)

// fakeIntegration records platform calls and returns scripted errors
type fakeIntegration struct {
	mu           sync.Mutex
	revealed     []string
	notified     [][2]string
	revealErr    error
	notifyErr    error
	revealCalled int
}

func (f *fakeIntegration) RevealFolder(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revealCalled++
	f.revealed = append(f.revealed, path)
	return f.revealErr
}

func (f *fakeIntegration) Notify(title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, [2]string{title, body})
	return f.notifyErr
}

func newTestApp(t *testing.T) (*App, *fakeIntegration) {
	t.Helper()

	application, err := NewApp(config.Default(), netutil.Port(54321), testutils.NewCaptureLogger())
	if err != nil {
		t.Fatalf("NewApp() returned error: %v", err)
	}

	fake := &fakeIntegration{}
	application.integration = fake
	return application, fake
}

func TestNewApp(t *testing.T) {
	application, _ := newTestApp(t)

	if application.supervisor == nil {
		t.Error("NewApp() should construct the backend supervisor")
	}
	if application.GetLogger() == nil {
		t.Error("NewApp() should keep the injected logger")
	}
}

func TestGetBackendPortIsStable(t *testing.T) {
	application, _ := newTestApp(t)

	if got := application.GetBackendPort(); got != 54321 {
		t.Fatalf("GetBackendPort() = %d, want 54321", got)
	}

	// Concurrent reads must all observe the same immutable value.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if got := application.GetBackendPort(); got != 54321 {
					t.Errorf("GetBackendPort() = %d, want 54321", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGetAppDataDir(t *testing.T) {
	application, _ := newTestApp(t)

	dir, err := application.GetAppDataDir()
	if err != nil {
		t.Fatalf("GetAppDataDir() returned error: %v", err)
	}
	if !strings.Contains(dir, "conciliador") {
		t.Errorf("data dir %q should be application-specific", dir)
	}
}

func TestOpenFolderDelegatesToPlatform(t *testing.T) {
	application, fake := newTestApp(t)

	if err := application.OpenFolder("/tmp/reports"); err != nil {
		t.Fatalf("OpenFolder() returned error: %v", err)
	}

	if len(fake.revealed) != 1 || fake.revealed[0] != "/tmp/reports" {
		t.Errorf("platform received %v, want [/tmp/reports]", fake.revealed)
	}
}

func TestOpenFolderRejectsEmptyPath(t *testing.T) {
	application, fake := newTestApp(t)

	err := application.OpenFolder("")
	if err == nil {
		t.Fatal("OpenFolder(\"\") should fail validation")
	}
	if errors.GetErrorCode(err) != errors.ErrCodeValidation {
		t.Errorf("error code = %s, want VALIDATION", errors.GetErrorCode(err))
	}
	if fake.revealCalled != 0 {
		t.Error("platform must not be called for invalid input")
	}
}

func TestOpenFolderPropagatesPlatformError(t *testing.T) {
	application, fake := newTestApp(t)
	fake.revealErr = errors.NewShellError("RevealFolder", nil, errors.ErrCodePlatformCall)

	err := application.OpenFolder("/tmp/x")
	if err == nil {
		t.Fatal("OpenFolder() should surface the platform error")
	}
	if errors.GetErrorCode(err) != errors.ErrCodePlatformCall {
		t.Errorf("error code = %s, want PLATFORM_CALL", errors.GetErrorCode(err))
	}
}

func TestShowNotificationDelegatesToPlatform(t *testing.T) {
	application, fake := newTestApp(t)

	if err := application.ShowNotification("Reconciliation done", "5 matches found"); err != nil {
		t.Fatalf("ShowNotification() returned error: %v", err)
	}

	if len(fake.notified) != 1 {
		t.Fatalf("platform received %d notifications, want 1", len(fake.notified))
	}
	if fake.notified[0] != [2]string{"Reconciliation done", "5 matches found"} {
		t.Errorf("notification = %v", fake.notified[0])
	}
}

func TestShowNotificationRejectsEmptyTitle(t *testing.T) {
	application, fake := newTestApp(t)

	err := application.ShowNotification("", "body")
	if err == nil {
		t.Fatal("ShowNotification with empty title should fail validation")
	}
	if len(fake.notified) != 0 {
		t.Error("platform must not be called for invalid input")
	}
}

func TestShowNotificationPropagatesPlatformError(t *testing.T) {
	application, fake := newTestApp(t)
	fake.notifyErr = errors.NewShellError("Notify", nil, errors.ErrCodeNotification)

	err := application.ShowNotification("title", "body")
	if err == nil {
		t.Fatal("ShowNotification() should surface the platform error")
	}
	if errors.GetErrorCode(err) != errors.ErrCodeNotification {
		t.Errorf("error code = %s, want NOTIFICATION", errors.GetErrorCode(err))
	}
}

func TestBeforeCloseNeverPreventsQuit(t *testing.T) {
	application, _ := newTestApp(t)

	if application.BeforeClose(context.Background()) {
		t.Error("BeforeClose() must never prevent the window from closing")
	}
}

func TestShutdownWithoutStartupIsSafe(t *testing.T) {
	application, _ := newTestApp(t)

	// The supervisor was never started; Shutdown must still be a no-op.
	application.Shutdown(context.Background())
}
