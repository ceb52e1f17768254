package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"conciliador/internal/infrastructure/errors"
)

const (
	// appDirName is the directory used under the platform config/data roots.
	appDirName = "conciliador"

	// DefaultBackendBinary is the sidecar executable launched and supervised
	// by the shell. A bare name resolves next to the application executable.
	DefaultBackendBinary = "conciliacion-backend"

	defaultRestartDelaySeconds = 2
	defaultWindowWidth         = 1200
	defaultWindowHeight        = 800
)

// Settings holds the user-adjustable shell configuration. Everything has a
// working default; the settings file is optional.
type Settings struct {
	// BackendBinary is the backend executable. Relative names are resolved
	// against the directory of the running application binary.
	BackendBinary string `yaml:"backendBinary"`

	// RestartDelaySeconds is the fixed interval between supervisor restart
	// attempts, used uniformly for spawn failures and unexpected exits.
	RestartDelaySeconds int `yaml:"restartDelaySeconds"`

	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		BackendBinary:       DefaultBackendBinary,
		RestartDelaySeconds: defaultRestartDelaySeconds,
		WindowWidth:         defaultWindowWidth,
		WindowHeight:        defaultWindowHeight,
	}
}

// RestartDelay returns the supervisor restart interval as a duration
func (s *Settings) RestartDelay() time.Duration {
	return time.Duration(s.RestartDelaySeconds) * time.Second
}

// Validate checks settings for values the shell cannot operate with
func (s *Settings) Validate() error {
	if s.BackendBinary == "" {
		return errors.NewShellError("Validate",
			fmt.Errorf("backendBinary must not be empty"),
			errors.ErrCodeValidation)
	}
	if s.RestartDelaySeconds <= 0 {
		return errors.NewShellErrorWithContext("Validate",
			fmt.Errorf("restartDelaySeconds must be positive"),
			errors.ErrCodeValidation,
			map[string]string{"restartDelaySeconds": fmt.Sprintf("%d", s.RestartDelaySeconds)})
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return errors.NewShellError("Validate",
			fmt.Errorf("window dimensions must be positive"),
			errors.ErrCodeValidation)
	}
	return nil
}

// DefaultPath returns the settings file location under the platform config dir
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, "config.yaml")
}

// DataDir resolves the application data directory under the platform data
// root. The directory is created if it does not exist yet.
func DataDir() (string, error) {
	dir := filepath.Join(xdg.DataHome, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.NewShellErrorWithContext("DataDir",
			err,
			errors.ErrCodePathResolution,
			map[string]string{"dir": dir})
	}
	return dir, nil
}

// Load reads settings from the given path. A missing file yields the
// defaults; a present but unreadable or malformed file is a fatal startup
// error, not something to silently paper over.
func Load(path string) (*Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, errors.NewShellErrorWithContext("Load",
			err,
			errors.ErrCodeConfig,
			map[string]string{"path": path})
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, errors.NewShellErrorWithContext("Load",
			fmt.Errorf("malformed settings file: %w", err),
			errors.ErrCodeConfig,
			map[string]string{"path": path})
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// ResolveBackendPath turns the configured backend binary into a launchable
// path. Absolute paths pass through; bare names resolve next to the running
// executable, matching how the backend ships alongside the shell.
func ResolveBackendPath(binary string) (string, error) {
	if filepath.IsAbs(binary) {
		return binary, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.NewShellError("ResolveBackendPath",
			fmt.Errorf("cannot locate application executable: %w", err),
			errors.ErrCodePathResolution)
	}
	return filepath.Join(filepath.Dir(exe), binary), nil
}
