package netutil

import (
	"fmt"
	"net"
	"testing"
)

func TestAllocateEphemeralPort(t *testing.T) {
	port, err := AllocateEphemeralPort()
	if err != nil {
		t.Fatalf("AllocateEphemeralPort() returned error: %v", err)
	}

	if port == 0 {
		t.Error("AllocateEphemeralPort() returned port 0")
	}
}

func TestAllocateEphemeralPortIsRebindable(t *testing.T) {
	port, err := AllocateEphemeralPort()
	if err != nil {
		t.Fatalf("AllocateEphemeralPort() returned error: %v", err)
	}

	// The allocator must have released the socket: binding the same port
	// again is exactly what the backend process does at startup.
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		t.Fatalf("port %d was not rebindable after allocation: %v", port, err)
	}
	defer listener.Close()

	addr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		t.Fatalf("unexpected address type %T", listener.Addr())
	}
	if Port(addr.Port) != port {
		t.Errorf("rebound port = %d, want %d", addr.Port, port)
	}
}

func TestAllocateEphemeralPortReturnsDistinctPorts(t *testing.T) {
	// Not guaranteed by the OS in theory, but with nothing bound in between
	// consecutive allocations virtually never collide; a collision here
	// would indicate the listener was not actually released.
	seen := make(map[Port]bool)
	for i := 0; i < 5; i++ {
		port, err := AllocateEphemeralPort()
		if err != nil {
			t.Fatalf("allocation %d returned error: %v", i, err)
		}
		seen[port] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected at least 2 distinct ports across 5 allocations, got %d", len(seen))
	}
}
