package ports

import (
	"context"
	"time"
)

// RemoteTarget identifies the replication destination.
type RemoteTarget struct {
	User string
	Host string
	Path string
}

// Replicator copies a locally written record to a remote destination. The
// two failure modes, timed out and non-zero exit, surface as distinct errors
// but are equivalent for retry purposes.
type Replicator interface {
	Copy(ctx context.Context, localPath string, target RemoteTarget, timeout time.Duration) error
}
