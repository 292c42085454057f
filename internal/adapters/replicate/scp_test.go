package replicate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

var testTarget = ports.RemoteTarget{User: "pi", Host: "lab-host", Path: "/srv/data"}

func TestCopySuccess(t *testing.T) {
	s := NewCommand("true")
	if err := s.Copy(context.Background(), "/tmp/record.txt", testTarget, time.Second); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestCopyNonZeroExit(t *testing.T) {
	s := NewCommand("false")
	err := s.Copy(context.Background(), "/tmp/record.txt", testTarget, time.Second)
	if err == nil {
		t.Fatalf("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "exited 1") {
		t.Fatalf("expected exit code in error, got %v", err)
	}
}

func TestCopyTimeout(t *testing.T) {
	// The trailing source and destination args land in $0 and $1 and are
	// ignored by the script.
	s := NewCommand("sh", "-c", "sleep 5")
	err := s.Copy(context.Background(), "/tmp/record.txt", testTarget, 50*time.Millisecond)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout in error, got %v", err)
	}
}

func TestCopyMissingBinary(t *testing.T) {
	s := NewCommand("definitely-not-a-real-binary-xyz")
	if err := s.Copy(context.Background(), "/tmp/record.txt", testTarget, time.Second); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}

func TestDefaultInvocationShape(t *testing.T) {
	s := NewSCP()
	if s.bin != "scp" {
		t.Fatalf("expected scp binary, got %q", s.bin)
	}
	joined := strings.Join(s.args, " ")
	if !strings.Contains(joined, "BatchMode=yes") {
		t.Fatalf("expected non-interactive scp flags, got %q", joined)
	}
}
