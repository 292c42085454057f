package probe

import (
	"net"
	"testing"
	"time"
)

func TestIsReachableAgainstLocalListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	if !(TCP{}).IsReachable("127.0.0.1", port, time.Second) {
		t.Fatalf("expected local listener on port %d to be reachable", port)
	}
}

func TestIsReachableClosedPort(t *testing.T) {
	// Grab a free port, then close the listener so nothing accepts on it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	if (TCP{}).IsReachable("127.0.0.1", port, 500*time.Millisecond) {
		t.Fatalf("expected closed port %d to be unreachable", port)
	}
}
