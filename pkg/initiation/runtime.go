package initiation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/adapters/gpio"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/adapters/indicator"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/adapters/observability"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/adapters/probe"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/adapters/replicate"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/adapters/storage"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/app/pipeline"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// failureHold keeps the terminal failure state visible before the reference
// one-press run exits.
const failureHold = 5 * time.Second

// RuntimeOption customizes the dependencies used by Runtime.
type RuntimeOption func(*runtimeOverrides)

type runtimeOverrides struct {
	io         ports.DigitalIO
	ind        ports.Indicator
	prober     ports.Prober
	replicator ports.Replicator
	writer     ports.RecordWriter
	obs        ports.Observability
	logger     *logr.Logger
	continuous bool
}

// WithDigitalIO injects a pin capability other than the Raspberry Pi default
// (the in-memory adapter, an expander behind I2C, fakes in tests).
func WithDigitalIO(io ports.DigitalIO) RuntimeOption {
	return func(o *runtimeOverrides) { o.io = io }
}

// WithIndicator replaces the pin-mapped indicator driver.
func WithIndicator(ind ports.Indicator) RuntimeOption {
	return func(o *runtimeOverrides) { o.ind = ind }
}

// WithProber swaps the TCP reachability probe.
func WithProber(p ports.Prober) RuntimeOption {
	return func(o *runtimeOverrides) { o.prober = p }
}

// WithReplicator replaces the scp transport for remote copies.
func WithReplicator(r ports.Replicator) RuntimeOption {
	return func(o *runtimeOverrides) { o.replicator = r }
}

// WithRecordWriter replaces the local filesystem writer.
func WithRecordWriter(w ports.RecordWriter) RuntimeOption {
	return func(o *runtimeOverrides) { o.writer = w }
}

// WithObservability plugs in a custom metrics/logging backend.
func WithObservability(obs ports.Observability) RuntimeOption {
	return func(o *runtimeOverrides) { o.obs = obs }
}

// WithLogger sets the logger used by the default observability backend.
func WithLogger(log logr.Logger) RuntimeOption {
	return func(o *runtimeOverrides) { o.logger = &log }
}

// WithContinuous keeps the runtime handling presses until the context ends,
// instead of the reference behavior of one press and exit.
func WithContinuous() RuntimeOption {
	return func(o *runtimeOverrides) { o.continuous = true }
}

// Runtime wires the press detector, write pipeline, and network status loop
// around one indicator. A single event loop owns the indicator: network
// ticks are not processed while a press is being handled, so the status loop
// can never repaint the color mid-sequence.
type Runtime struct {
	cfg        *Config
	obs        ports.Observability
	io         ports.DigitalIO
	ind        ports.Indicator
	state      *pipeline.RunState
	status     *pipeline.StatusLoop
	pipe       *pipeline.WritePipeline
	detector   *pipeline.Detector
	metricsSrv *http.Server
	replicate  bool
	continuous bool
}

// NewRuntime bootstraps the default adapters (Raspberry Pi GPIO, pin-mapped
// indicator, TCP prober, scp replicator, file writer, Prometheus
// observability). RuntimeOption values override any dependency.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	var overrides runtimeOverrides
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	obs := overrides.obs
	if obs == nil {
		log, err := buildLogger(overrides.logger)
		if err != nil {
			return nil, err
		}
		obs = observability.NewPromObs(log)
	}

	io := overrides.io
	if io == nil {
		var err error
		io, err = gpio.OpenRPi()
		if err != nil {
			return nil, err
		}
	}

	ind := overrides.ind
	if ind == nil {
		var err error
		ind, err = indicator.New(io, indicator.Pins{
			Red:     cfg.GPIO.PinRed,
			Green:   cfg.GPIO.PinGreen,
			Blue:    cfg.GPIO.PinBlue,
			Status:  cfg.GPIO.StatusLED,
			Success: cfg.GPIO.SuccessLED,
			Error:   cfg.GPIO.ErrorLED,
		})
		if err != nil {
			return nil, err
		}
	}

	// Cold-start reset: any failure color from a previous run is cleared.
	ind.SetColor(ports.ColorOff)
	ind.SetLight(ports.LightStatus, false)
	ind.SetLight(ports.LightSuccess, false)
	ind.SetLight(ports.LightError, false)

	prober := overrides.prober
	if prober == nil {
		prober = probe.TCP{}
	}

	writer := overrides.writer
	if writer == nil {
		writer = storage.NewFileWriter()
	}

	var (
		rep         ports.Replicator
		target      ports.RemoteTarget
		copyTimeout time.Duration
	)
	if cfg.ReplicationEnabled() {
		rep = overrides.replicator
		if rep == nil {
			rep = replicate.NewSCP()
		}
		target = ports.RemoteTarget{
			User: cfg.Remote.User,
			Host: cfg.Remote.Host,
			Path: cfg.Remote.Path,
		}
		copyTimeout = cfg.Remote.Timeout
	}

	state := &pipeline.RunState{}

	return &Runtime{
		cfg:   cfg,
		obs:   obs,
		io:    io,
		ind:   ind,
		state: state,
		status: &pipeline.StatusLoop{
			Prober:    prober,
			Host:      cfg.Network.TestHost,
			Port:      cfg.Network.TestPort,
			Timeout:   cfg.Network.ProbeTimeout,
			Indicator: ind,
			State:     state,
			Obs:       obs,
		},
		pipe: &pipeline.WritePipeline{
			Writer:      writer,
			Replicator:  rep,
			Target:      target,
			CopyTimeout: copyTimeout,
			Indicator:   ind,
			Obs:         obs,
			MaxRetries:  cfg.Behavior.Retries(),
			Timing: pipeline.Timing{
				BlinkDuration: cfg.Behavior.BlinkDuration,
				RetryDelay:    cfg.Behavior.RetryDelay,
				PressHold:     cfg.Behavior.PressHold,
				SuccessHold:   cfg.Behavior.SuccessHold,
			},
		},
		detector:   pipeline.NewDetector(io, cfg.GPIO.ButtonPin, cfg.Behavior.PollInterval),
		replicate:  cfg.ReplicationEnabled(),
		continuous: overrides.continuous,
	}, nil
}

// Run blocks until the context is cancelled or, in the reference one-press
// mode, until one press has been handled. Pins are cleared on every exit
// path, including interrupts mid-sequence.
func (r *Runtime) Run(ctx context.Context) (err error) {
	r.startMetrics()
	defer func() {
		if e := r.shutdown(); e != nil && err == nil {
			err = e
		}
	}()

	presses := make(chan pipeline.Press, 1)
	if err := r.detector.Start(presses); err != nil {
		return err
	}
	defer r.detector.Stop()

	r.obs.LogInfo("controller_started",
		ports.Field{Key: "replication", Value: r.replicate},
		ports.Field{Key: "continuous", Value: r.continuous})

	// Probe once before waiting so the indicator shows status immediately.
	r.status.Tick()

	ticker := time.NewTicker(r.cfg.Network.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.status.Tick()
		case press := <-presses:
			rec, err := pipeline.PrepareRecord(r.cfg.Files, r.state.Connected(), press.At)
			if err != nil {
				return err
			}
			ok := r.pipe.HandlePress(ctx, rec, r.replicate)
			if r.continuous {
				continue
			}
			if !ok {
				// Keep the failure state visible before exiting.
				select {
				case <-time.After(failureHold):
				case <-ctx.Done():
				}
				return fmt.Errorf("press handling failed after %d attempts", r.pipe.MaxRetries+1)
			}
			return nil
		}
	}
}

func (r *Runtime) startMetrics() {
	if r.cfg.Metrics.Addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.metricsSrv = &http.Server{
		Addr:    r.cfg.Metrics.Addr,
		Handler: mux,
	}

	go func() {
		if err := r.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.obs.LogError("metrics_server_exited", err)
		}
	}()
}

func (r *Runtime) shutdown() error {
	var errs []error

	if r.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
	}

	if err := r.io.Cleanup(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func buildLogger(override *logr.Logger) (logr.Logger, error) {
	if override != nil {
		return *override, nil
	}
	zl, err := zap.NewProduction()
	if err != nil {
		return logr.Logger{}, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(zl), nil
}
