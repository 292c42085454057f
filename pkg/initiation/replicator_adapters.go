package initiation

import (
	"context"
	"fmt"
	"time"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/adapters/probe"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// CopyFunc is invoked once per replication request with the local path of
// the freshly written record.
type CopyFunc func(ctx context.Context, localPath string, target RemoteTarget, timeout time.Duration) error

// NewCallbackReplicator adapts a plain function into a full Replicator so
// callers can ship records over any transport (HTTP upload, object storage,
// message bus) without defining a struct.
func NewCallbackReplicator(name string, fn CopyFunc) Replicator {
	if name == "" {
		name = "callback"
	}
	return &callbackReplicator{name: name, fn: fn}
}

type callbackReplicator struct {
	name string
	fn   CopyFunc
}

func (r *callbackReplicator) Copy(ctx context.Context, localPath string, target ports.RemoteTarget, timeout time.Duration) error {
	if r.fn == nil {
		return fmt.Errorf("callback replicator %q: nil handler", r.name)
	}
	return r.fn(ctx, localPath, target, timeout)
}

// CheckNetwork runs a single reachability probe against cfg's network group.
func CheckNetwork(cfg *Config) bool {
	if cfg == nil {
		return false
	}
	return probe.TCP{}.IsReachable(cfg.Network.TestHost, cfg.Network.TestPort, cfg.Network.ProbeTimeout)
}
