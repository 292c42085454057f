package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/domain"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// Timing bundles the visual delays of one press handling cycle.
type Timing struct {
	BlinkDuration time.Duration
	RetryDelay    time.Duration
	PressHold     time.Duration
	SuccessHold   time.Duration
}

// WritePipeline turns one prepared record into a durable, optionally
// replicated write. The attempt budget is MaxRetries+1: one initial try plus
// MaxRetries retries. It owns the indicator from HandlePress entry to return.
type WritePipeline struct {
	Writer      ports.RecordWriter
	Replicator  ports.Replicator
	Target      ports.RemoteTarget
	CopyTimeout time.Duration
	Indicator   ports.Indicator
	Obs         ports.Observability
	MaxRetries  int
	Timing      Timing
}

// HandlePress runs the bounded retry sequence for rec and reports whether
// any attempt succeeded. Success is terminal: remaining retries are skipped.
// Exhaustion leaves the indicator on a steady failure color with the error
// light held; only a later successful press or a restart clears it.
func (p *WritePipeline) HandlePress(ctx context.Context, rec *domain.Record, replicate bool) bool {
	start := time.Now()
	p.Obs.IncCounter("initiation_presses_total", 1)
	p.Obs.LogInfo("press_received",
		ports.Field{Key: "file", Value: rec.Filename},
		ports.Field{Key: "replicate", Value: replicate})

	p.Indicator.SetLight(ports.LightStatus, true)
	time.Sleep(p.Timing.PressHold)

	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if p.writeOnce(ctx, rec, replicate, attempt) {
			p.Indicator.SetLight(ports.LightStatus, false)
			p.Indicator.SetLight(ports.LightSuccess, true)
			time.Sleep(p.Timing.SuccessHold)
			p.Indicator.SetLight(ports.LightSuccess, false)

			p.Obs.ObserveLatency("initiation_press_duration_seconds", time.Since(start).Seconds())
			p.Obs.LogInfo("press_succeeded", ports.Field{Key: "attempt", Value: attempt})
			return true
		}

		// The blink count tells an operator which attempt just failed:
		// attempt 0 blinks once, attempt 1 twice, and so on.
		p.blinkError(attempt + 1)
		if attempt < p.MaxRetries {
			time.Sleep(p.Timing.RetryDelay)
		}
	}

	p.Indicator.SetLight(ports.LightStatus, false)
	p.Indicator.SetColor(ports.ColorRed)
	p.Indicator.SetLight(ports.LightError, true)

	p.Obs.IncCounter("initiation_presses_failed_total", 1)
	p.Obs.ObserveLatency("initiation_press_duration_seconds", time.Since(start).Seconds())
	p.Obs.LogError("press_failed",
		fmt.Errorf("all %d attempts failed", p.MaxRetries+1),
		ports.Field{Key: "file", Value: rec.Filename})
	return false
}

// writeOnce performs a single attempt: the local write, then the remote copy
// when replication is requested. Every failure is converted to a boolean
// here; no I/O error escapes an attempt boundary. A failed remote copy fails
// the attempt even though the local write landed, and the retry redoes both.
func (p *WritePipeline) writeOnce(ctx context.Context, rec *domain.Record, replicate bool, attempt int) bool {
	p.Obs.IncCounter("initiation_attempts_total", 1)

	if err := p.Writer.Write(rec); err != nil {
		p.Obs.LogError("record_write_failed", err, ports.Field{Key: "attempt", Value: attempt})
		p.Obs.IncCounter("initiation_attempt_failures_total", 1)
		return false
	}

	if !replicate {
		return true
	}

	if err := p.Replicator.Copy(ctx, rec.LocalPath, p.Target, p.CopyTimeout); err != nil {
		p.Obs.LogError("replication_failed", err, ports.Field{Key: "attempt", Value: attempt})
		p.Obs.IncCounter("initiation_replication_failures_total", 1)
		p.Obs.IncCounter("initiation_attempt_failures_total", 1)
		return false
	}
	return true
}

func (p *WritePipeline) blinkError(n int) {
	for i := 0; i < n; i++ {
		p.Indicator.SetLight(ports.LightError, true)
		time.Sleep(p.Timing.BlinkDuration)
		p.Indicator.SetLight(ports.LightError, false)
		time.Sleep(p.Timing.BlinkDuration)
	}
}
