package errors

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"
)

// ClassifyError classifies OS and process errors into shell error codes
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return ErrCodeUnknown
	}

	// Typed errors first for accurate classification
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ErrCodeBackendExit
	}

	switch {
	case errors.Is(err, exec.ErrNotFound):
		return ErrCodeSpawn
	case errors.Is(err, os.ErrNotExist), errors.Is(err, fs.ErrNotExist):
		return ErrCodePathResolution
	case errors.Is(err, os.ErrPermission):
		return ErrCodePlatformCall
	}

	// Fall back to string-based classification for errors that reach us
	// without their original type (e.g. wrapped across a process boundary)
	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "executable file not found"):
		return ErrCodeSpawn
	case strings.Contains(errStr, "no such file or directory"):
		return ErrCodePathResolution
	case strings.Contains(errStr, "permission denied"):
		return ErrCodePlatformCall
	case strings.Contains(errStr, "exit status"):
		return ErrCodeBackendExit
	default:
		return ErrCodeUnknown
	}
}
