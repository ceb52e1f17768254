//go:build linux

package platform

import (
	"os/exec"

	"conciliador/internal/infrastructure/errors"
)

// LinuxAPI implements Integration for Linux desktops
type LinuxAPI struct{}

// NewLinuxAPI creates a new Linux API instance
func NewLinuxAPI() *LinuxAPI {
	return &LinuxAPI{}
}

// NewIntegration creates a new Integration instance for Linux
func NewIntegration() Integration {
	return NewLinuxAPI()
}

// RevealFolder opens the folder in the desktop's file manager via xdg-open
func (l *LinuxAPI) RevealFolder(path string) error {
	if err := exec.Command("xdg-open", path).Start(); err != nil {
		return errors.NewShellErrorWithContext("RevealFolder",
			err,
			errors.ErrCodePlatformCall,
			map[string]string{"path": path})
	}
	return nil
}

// Notify shows a desktop notification via notify-send
func (l *LinuxAPI) Notify(title, body string) error {
	if err := exec.Command("notify-send", title, body).Run(); err != nil {
		return errors.NewShellErrorWithContext("Notify",
			err,
			errors.ErrCodeNotification,
			map[string]string{"title": title})
	}
	return nil
}
