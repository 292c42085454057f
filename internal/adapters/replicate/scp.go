package replicate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"path/filepath"
	"time"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// SCP replicates files by invoking the system scp binary. A hung transfer is
// bounded by the context deadline; a timeout and a non-zero exit surface as
// distinct errors but both count as replication failure.
type SCP struct {
	bin  string
	args []string
}

func NewSCP() *SCP {
	return &SCP{
		bin:  "scp",
		args: []string{"-o", "BatchMode=yes", "-o", "StrictHostKeyChecking=accept-new"},
	}
}

// NewCommand runs an arbitrary binary in place of scp. Used by tests.
func NewCommand(bin string, args ...string) *SCP {
	return &SCP{bin: bin, args: args}
}

func (s *SCP) Copy(ctx context.Context, localPath string, target ports.RemoteTarget, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	dest := fmt.Sprintf("%s@%s:%s", target.User, target.Host, path.Join(target.Path, filepath.Base(localPath)))
	args := append(append([]string{}, s.args...), localPath, dest)

	cmd := exec.CommandContext(ctx, s.bin, args...)
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%s to %s timed out after %s", s.bin, target.Host, timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited %d: %s", s.bin, exitErr.ExitCode(), bytes.TrimSpace(out))
		}
		return fmt.Errorf("%s: %w", s.bin, err)
	}
	return nil
}

var _ ports.Replicator = (*SCP)(nil)
