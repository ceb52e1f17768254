package platform

import (
	"fmt"

	"conciliador/internal/infrastructure/errors"
)

// NoopIntegration serves platforms without a defined reveal or notification
// behavior. RevealFolder succeeding without doing anything is declared
// policy, not an oversight.
type NoopIntegration struct{}

// NewNoopIntegration creates a new no-op integration instance
func NewNoopIntegration() *NoopIntegration {
	return &NoopIntegration{}
}

// RevealFolder does nothing and reports success
func (n *NoopIntegration) RevealFolder(path string) error {
	return nil
}

// Notify reports that notifications are unavailable on this platform
func (n *NoopIntegration) Notify(title, body string) error {
	return errors.NewShellError("Notify",
		fmt.Errorf("native notifications are not supported on this platform"),
		errors.ErrCodeNotification)
}
