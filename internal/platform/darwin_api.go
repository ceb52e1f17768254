//go:build darwin

package platform

import (
	"fmt"
	"os/exec"

	"conciliador/internal/infrastructure/errors"
)

// DarwinAPI implements Integration for macOS
type DarwinAPI struct{}

// NewDarwinAPI creates a new macOS API instance
func NewDarwinAPI() *DarwinAPI {
	return &DarwinAPI{}
}

// NewIntegration creates a new Integration instance for macOS
func NewIntegration() Integration {
	return NewDarwinAPI()
}

// RevealFolder opens the folder in Finder via the `open` launcher
func (d *DarwinAPI) RevealFolder(path string) error {
	if err := exec.Command("open", path).Start(); err != nil {
		return errors.NewShellErrorWithContext("RevealFolder",
			err,
			errors.ErrCodePlatformCall,
			map[string]string{"path": path})
	}
	return nil
}

// Notify shows a notification through the Notification Center via osascript
func (d *DarwinAPI) Notify(title, body string) error {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return errors.NewShellErrorWithContext("Notify",
			err,
			errors.ErrCodeNotification,
			map[string]string{"title": title})
	}
	return nil
}
