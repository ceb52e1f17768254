package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode represents different types of shell errors
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodePortAllocation
	ErrCodeConfig
	ErrCodeSpawn
	ErrCodeBackendExit
	ErrCodePathResolution
	ErrCodePlatformCall
	ErrCodeNotification
	ErrCodeValidation
	ErrCodeInternal
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodePortAllocation:
		return "PORT_ALLOCATION"
	case ErrCodeConfig:
		return "CONFIG"
	case ErrCodeSpawn:
		return "SPAWN"
	case ErrCodeBackendExit:
		return "BACKEND_EXIT"
	case ErrCodePathResolution:
		return "PATH_RESOLUTION"
	case ErrCodePlatformCall:
		return "PLATFORM_CALL"
	case ErrCodeNotification:
		return "NOTIFICATION"
	case ErrCodeValidation:
		return "VALIDATION"
	case ErrCodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// Category classifies how an error propagates through the application.
type Category int

const (
	// CategoryFatal aborts the application at startup.
	CategoryFatal Category = iota
	// CategoryRecoverable is logged, broadcast and retried by the
	// supervisor; it never escalates to application failure.
	CategoryRecoverable
	// CategoryCommand is returned synchronously to the UI caller.
	CategoryCommand
)

// String returns a string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryFatal:
		return "FATAL"
	case CategoryRecoverable:
		return "RECOVERABLE"
	case CategoryCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// ShellError represents a shell-specific error with context and propagation information
type ShellError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *ShellError) Error() string {
	// Guard against nil receiver
	if e == nil {
		return "shell error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	// Add context with deterministic order (treat nil Context as empty)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "shell error" + contextStr
}

func (e *ShellError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *ShellError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*ShellError); ok {
		return e.Code == t.Code
	}
	// Also check if the target matches the underlying/wrapped error
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *ShellError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetCategory returns the propagation category derived from the error code
func (e *ShellError) GetCategory() Category {
	if e == nil {
		return CategoryCommand
	}
	return categoryForCode(e.Code)
}

// GetContext returns the error context (for logging interface compatibility)
func (e *ShellError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *ShellError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not concurrency-safe; do not use after the error has been published to
// other goroutines. For concurrent usage create a new error with
// NewShellErrorWithContext instead.
func (e *ShellError) WithContext(key, value string) *ShellError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewShellError creates a new shell error with the given parameters
func NewShellError(op string, err error, code ErrorCode) *ShellError {
	return &ShellError{
		Op:        op,
		Err:       err,
		Code:      code,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewShellErrorWithContext creates a new shell error with additional context
func NewShellErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *ShellError {
	shellErr := NewShellError(op, err, code)
	if context != nil {
		// Clone the context map to avoid external mutation and data races
		shellErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			shellErr.Context[k] = v
		}
	}
	return shellErr
}

// categoryForCode maps error codes onto propagation categories
func categoryForCode(code ErrorCode) Category {
	switch code {
	case ErrCodePortAllocation, ErrCodeConfig:
		return CategoryFatal
	case ErrCodeSpawn, ErrCodeBackendExit:
		return CategoryRecoverable
	case ErrCodePathResolution, ErrCodePlatformCall, ErrCodeNotification, ErrCodeValidation:
		return CategoryCommand
	default:
		return CategoryCommand
	}
}

// Error classification functions

// IsFatal checks if the error aborts the application at startup
func IsFatal(err error) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.GetCategory() == CategoryFatal
	}
	return false
}

// IsRecoverable checks if the error is handled by the supervisor retry loop
func IsRecoverable(err error) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.GetCategory() == CategoryRecoverable
	}
	return false
}

// IsSpawn checks if the error is a backend spawn failure
func IsSpawn(err error) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code == ErrCodeSpawn
	}
	return false
}

// IsPathResolution checks if the error is a path resolution failure
func IsPathResolution(err error) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code == ErrCodePathResolution
	}
	return false
}

// IsPlatformCall checks if the error is an OS-level call failure
func IsPlatformCall(err error) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code == ErrCodePlatformCall
	}
	return false
}

// GetErrorCode extracts the error code from an error, returning
// ErrCodeUnknown for non-shell errors
func GetErrorCode(err error) ErrorCode {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code
	}
	return ErrCodeUnknown
}
