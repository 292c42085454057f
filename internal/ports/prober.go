package ports

import "time"

// Prober reports network reachability. A probe succeeds iff a connection to
// host:port completes before the timeout.
type Prober interface {
	IsReachable(host string, port int, timeout time.Duration) bool
}
