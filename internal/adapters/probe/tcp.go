package probe

import (
	"net"
	"strconv"
	"time"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// TCP probes reachability with a single connect attempt. The probe succeeds
// iff the connection completes before the timeout.
type TCP struct{}

func (TCP) IsReachable(host string, port int, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

var _ ports.Prober = TCP{}
