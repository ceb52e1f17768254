//go:build !darwin && !linux && !windows

package platform

// NewIntegration creates the no-op Integration for platforms without a
// defined folder-reveal or notification behavior
func NewIntegration() Integration {
	return NewNoopIntegration()
}
