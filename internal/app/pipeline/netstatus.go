package pipeline

import (
	"time"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// StatusLoop mirrors network reachability on the indicator color. Tick is
// only invoked between presses; the write pipeline owns the indicator while
// a press is being handled, so the two never race over the color channel.
type StatusLoop struct {
	Prober    ports.Prober
	Host      string
	Port      int
	Timeout   time.Duration
	Indicator ports.Indicator
	State     *RunState
	Obs       ports.Observability
}

// Tick probes once, updates the shared run state, and sets the indicator to
// the connected or disconnected color. Transitions are logged.
func (l *StatusLoop) Tick() bool {
	was := l.State.Connected()
	up := l.Prober.IsReachable(l.Host, l.Port, l.Timeout)
	l.State.SetConnected(up)

	if up {
		l.Indicator.SetColor(ports.ColorGreen)
		l.Obs.SetGauge("initiation_network_connected", 1)
	} else {
		l.Indicator.SetColor(ports.ColorRed)
		l.Obs.SetGauge("initiation_network_connected", 0)
	}

	if up != was {
		if up {
			l.Obs.LogInfo("network_connected", ports.Field{Key: "host", Value: l.Host})
		} else {
			l.Obs.LogInfo("network_disconnected", ports.Field{Key: "host", Value: l.Host})
		}
	}
	return up
}
