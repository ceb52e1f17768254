package netutil

import (
	"fmt"
	"net"
)

// Port is a local TCP port number assigned by the operating system.
type Port uint16

// AllocateEphemeralPort asks the OS for a free loopback TCP port and returns
// it. The listener used to discover the port is closed before returning so
// the backend process can bind the same port immediately afterwards.
//
// Allocation failure is a startup precondition failure: if the OS cannot
// hand out a local ephemeral port, the environment is broken and the caller
// is expected to abort.
func AllocateEphemeralPort() (Port, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to bind to a free port: %w", err)
	}

	addr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		listener.Close()
		return 0, fmt.Errorf("unexpected listener address type %T", listener.Addr())
	}
	port := addr.Port

	// Release the socket so the child can take the port over.
	if err := listener.Close(); err != nil {
		return 0, fmt.Errorf("failed to release allocated port %d: %w", port, err)
	}

	return Port(port), nil
}
