package platform

// Integration defines the interface for platform-specific OS operations
type Integration interface {
	// RevealFolder opens the given folder in the OS file browser
	RevealFolder(path string) error

	// Notify shows a native notification with the given title and body
	Notify(title, body string) error
}
