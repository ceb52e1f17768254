package app

import (
	"context"
	"fmt"

	"conciliador/internal/config"
	"conciliador/internal/events"
	"conciliador/internal/infrastructure/errors"
	"conciliador/internal/infrastructure/logging"
	"conciliador/internal/netutil"
	"conciliador/internal/platform"
	"conciliador/internal/services"
)

// App struct represents the main application. It owns the backend
// supervisor and exposes the OS-integration commands to the frontend.
type App struct {
	ctx         context.Context
	settings    *config.Settings
	port        netutil.Port
	supervisor  *services.BackendSupervisor
	integration platform.Integration
	logger      logging.Logger
}

// NewApp creates a new App application struct with dependency injection.
// The port must already be allocated; it is immutable from here on.
func NewApp(settings *config.Settings, port netutil.Port, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	backendPath, err := config.ResolveBackendPath(settings.BackendBinary)
	if err != nil {
		return nil, err
	}

	supervisor := services.NewBackendSupervisor(backendPath, port, settings.RestartDelay(), logger)

	return &App{
		settings:    settings,
		port:        port,
		supervisor:  supervisor,
		integration: platform.NewIntegration(),
		logger:      logger,
	}, nil
}

// Startup is called at application startup. It wires the supervisor to the
// frontend event bus and launches the supervision loop.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	a.supervisor.Start(events.NewWailsSink(ctx))

	a.logger.Info("Application started",
		"backend_port", int(a.port),
		"backend_binary", a.settings.BackendBinary)
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
}

// BeforeClose is called when the application is about to quit. Closing the
// window always quits; the process exits 0 regardless of backend state.
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination. The backend is killed
// outright; it owns no state that needs a graceful drain.
func (a *App) Shutdown(ctx context.Context) {
	a.supervisor.Stop()
	a.logger.Info("Application shutdown completed")
}

// GetBackendPort returns the port the backend was launched with. The value
// is fixed at startup and identical across all calls for the process
// lifetime.
func (a *App) GetBackendPort() uint16 {
	return uint16(a.port)
}

// GetAppDataDir resolves the application data directory
func (a *App) GetAppDataDir() (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		logging.LogShellError(a.logger, err, "GetAppDataDir", nil)
		return "", err
	}
	return dir, nil
}

// OpenFolder reveals the given folder in the OS file browser. On platforms
// without a defined reveal behavior this is a documented no-op.
func (a *App) OpenFolder(path string) error {
	if path == "" {
		return errors.NewShellError("OpenFolder",
			fmt.Errorf("path must not be empty"),
			errors.ErrCodeValidation)
	}

	if err := a.integration.RevealFolder(path); err != nil {
		logging.LogShellError(a.logger, err, "OpenFolder", map[string]interface{}{"path": path})
		return err
	}
	return nil
}

// ShowNotification displays a native notification with the given title and body
func (a *App) ShowNotification(title, body string) error {
	if title == "" {
		return errors.NewShellError("ShowNotification",
			fmt.Errorf("title must not be empty"),
			errors.ErrCodeValidation)
	}

	if err := a.integration.Notify(title, body); err != nil {
		logging.LogShellError(a.logger, err, "ShowNotification", map[string]interface{}{"title": title})
		return err
	}
	return nil
}

// GetLogger returns the application's structured logger
func (a *App) GetLogger() logging.Logger {
	return a.logger
}
