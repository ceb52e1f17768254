//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"github.com/go-toast/toast"
	"golang.org/x/sys/windows"

	"conciliador/internal/infrastructure/errors"
)

var (
	shell32           = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteW = shell32.NewProc("ShellExecuteW")
)

// swShowNormal activates and displays the launched window.
const swShowNormal = 1

// notificationAppID identifies the application in the Windows Action Center.
const notificationAppID = "Conciliador"

// WindowsAPI implements Integration for Windows
type WindowsAPI struct{}

// NewWindowsAPI creates a new Windows API instance
func NewWindowsAPI() *WindowsAPI {
	return &WindowsAPI{}
}

// NewIntegration creates a new Integration instance for Windows
func NewIntegration() Integration {
	return NewWindowsAPI()
}

// RevealFolder opens the folder in Explorer via ShellExecuteW
func (w *WindowsAPI) RevealFolder(path string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return errors.NewShellError("RevealFolder", err, errors.ErrCodePlatformCall)
	}
	target, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return errors.NewShellErrorWithContext("RevealFolder",
			err,
			errors.ErrCodePlatformCall,
			map[string]string{"path": path})
	}

	// ShellExecuteW returns a value greater than 32 on success.
	ret, _, _ := procShellExecuteW.Call(
		0,
		uintptr(unsafe.Pointer(verb)),
		uintptr(unsafe.Pointer(target)),
		0,
		0,
		swShowNormal,
	)
	if ret <= 32 {
		return errors.NewShellErrorWithContext("RevealFolder",
			fmt.Errorf("ShellExecuteW failed with code %d", ret),
			errors.ErrCodePlatformCall,
			map[string]string{"path": path})
	}
	return nil
}

// Notify shows a toast notification in the Action Center
func (w *WindowsAPI) Notify(title, body string) error {
	notification := toast.Notification{
		AppID:   notificationAppID,
		Title:   title,
		Message: body,
	}
	if err := notification.Push(); err != nil {
		return errors.NewShellErrorWithContext("Notify",
			err,
			errors.ErrCodeNotification,
			map[string]string{"title": title})
	}
	return nil
}
