package initiation

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fastConfig returns the reference config with millisecond timing, no metrics
// server, and a temp save directory so tests finish quickly and leave nothing
// behind.
func fastConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Behavior.BlinkDuration = time.Millisecond
	cfg.Behavior.RetryDelay = time.Millisecond
	cfg.Behavior.PollInterval = time.Millisecond
	cfg.Behavior.PressHold = time.Millisecond
	cfg.Behavior.SuccessHold = time.Millisecond
	cfg.Network.CheckInterval = 10 * time.Millisecond
	cfg.Files.SaveDirectory = t.TempDir()
	cfg.Metrics.Addr = ""
	return cfg
}

// obsStub satisfies Observability without touching the global Prometheus
// registry, which only tolerates one NewPromObs per process.
type obsStub struct{}

func (obsStub) LogInfo(string, ...Field)         {}
func (obsStub) LogError(string, error, ...Field) {}
func (obsStub) IncCounter(string, float64)       {}
func (obsStub) SetGauge(string, float64)         {}
func (obsStub) ObserveLatency(string, float64)   {}

type proberStub struct{ up bool }

func (p proberStub) IsReachable(string, int, time.Duration) bool { return p.up }

// signalWriter counts writes and signals each one.
type signalWriter struct {
	mu    sync.Mutex
	paths []string
	ch    chan string
}

func newSignalWriter() *signalWriter {
	return &signalWriter{ch: make(chan string, 8)}
}

func (w *signalWriter) Write(rec *Record) error {
	w.mu.Lock()
	w.paths = append(w.paths, rec.LocalPath)
	w.mu.Unlock()
	w.ch <- rec.LocalPath
	return nil
}

func waitSignal(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for a record write")
		return ""
	}
}

func pressButton(io *MemoryGPIO, pin int) {
	io.SetInput(pin, false)
	time.Sleep(20 * time.Millisecond)
	io.SetInput(pin, true)
	// Hold the release long enough for the poller to observe the high level,
	// so a following press registers as a new falling edge.
	time.Sleep(20 * time.Millisecond)
}

func TestRuntimeRequiresConfig(t *testing.T) {
	if _, err := NewRuntime(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestRuntimeOnePressThenExit(t *testing.T) {
	cfg := fastConfig(t)
	io := NewMemoryGPIO()
	writer := newSignalWriter()

	rt, err := NewRuntime(cfg,
		WithDigitalIO(io),
		WithObservability(obsStub{}),
		WithProber(proberStub{up: true}),
		WithRecordWriter(writer),
	)
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- rt.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	pressButton(io, cfg.GPIO.ButtonPin)

	waitSignal(t, writer.ch)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("expected one-press mode to exit after success")
	}

	if !io.CleanedUp() {
		t.Fatalf("expected pin cleanup on exit")
	}
}

func TestRuntimeContinuousHandlesRepeatedPresses(t *testing.T) {
	cfg := fastConfig(t)
	io := NewMemoryGPIO()
	writer := newSignalWriter()

	rt, err := NewRuntime(cfg,
		WithDigitalIO(io),
		WithObservability(obsStub{}),
		WithProber(proberStub{up: true}),
		WithRecordWriter(writer),
		WithContinuous(),
	)
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	pressButton(io, cfg.GPIO.ButtonPin)
	waitSignal(t, writer.ch)

	pressButton(io, cfg.GPIO.ButtonPin)
	waitSignal(t, writer.ch)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("expected run to exit on context cancel")
	}

	if !io.CleanedUp() {
		t.Fatalf("expected pin cleanup on exit")
	}
}

func TestRuntimeReplicatesThroughCallback(t *testing.T) {
	cfg := fastConfig(t)
	cfg.Remote = &RemoteConfig{User: "pi", Host: "lab-host", Path: "/srv/data", Timeout: time.Second}

	io := NewMemoryGPIO()
	writer := newSignalWriter()

	var mu sync.Mutex
	var copied []string
	rep := NewCallbackReplicator("test", func(_ context.Context, localPath string, target RemoteTarget, _ time.Duration) error {
		mu.Lock()
		copied = append(copied, localPath)
		mu.Unlock()
		if target.Host != "lab-host" {
			t.Errorf("unexpected target host %q", target.Host)
		}
		return nil
	})

	rt, err := NewRuntime(cfg,
		WithDigitalIO(io),
		WithObservability(obsStub{}),
		WithProber(proberStub{up: true}),
		WithRecordWriter(writer),
		WithReplicator(rep),
	)
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- rt.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	pressButton(io, cfg.GPIO.ButtonPin)

	written := waitSignal(t, writer.ch)
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(copied) != 1 || copied[0] != written {
		t.Fatalf("expected one replication of %q, got %v", written, copied)
	}
}

func TestCallbackReplicatorNilHandler(t *testing.T) {
	rep := NewCallbackReplicator("", nil)
	if err := rep.Copy(context.Background(), "/tmp/x", RemoteTarget{}, time.Second); err == nil {
		t.Fatalf("expected error for nil handler")
	}
}
