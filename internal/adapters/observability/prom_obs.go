package observability

import (
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// Metric names exported so the pipeline and tests share one vocabulary.
const (
	MetricPresses             = "initiation_presses_total"
	MetricPressesFailed       = "initiation_presses_failed_total"
	MetricAttempts            = "initiation_attempts_total"
	MetricAttemptFailures     = "initiation_attempt_failures_total"
	MetricReplicationFailures = "initiation_replication_failures_total"
	MetricNetworkConnected    = "initiation_network_connected"
	MetricPressDuration       = "initiation_press_duration_seconds"
)

// PromObs backs the Observability port with Prometheus metrics and a logr
// logger.
type PromObs struct {
	log      logr.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

func NewPromObs(log logr.Logger) *PromObs {
	presses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricPresses,
		Help: "Qualifying button presses handled.",
	})
	pressesFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricPressesFailed,
		Help: "Presses that exhausted the retry budget.",
	})
	attempts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricAttempts,
		Help: "Write attempts, including retries.",
	})
	attemptFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricAttemptFailures,
		Help: "Write attempts that failed locally or remotely.",
	})
	replicationFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: MetricReplicationFailures,
		Help: "Attempts where the local write succeeded but the remote copy failed.",
	})
	networkConnected := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: MetricNetworkConnected,
		Help: "1 when the last reachability probe succeeded, else 0.",
	})
	pressDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricPressDuration,
		Help:    "End-to-end duration of one press handling cycle.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	})

	prometheus.MustRegister(presses, pressesFailed, attempts, attemptFailures,
		replicationFailures, networkConnected, pressDuration)

	return &PromObs{
		log: log,
		counters: map[string]prometheus.Counter{
			MetricPresses:             presses,
			MetricPressesFailed:       pressesFailed,
			MetricAttempts:            attempts,
			MetricAttemptFailures:     attemptFailures,
			MetricReplicationFailures: replicationFailures,
		},
		gauges: map[string]prometheus.Gauge{
			MetricNetworkConnected: networkConnected,
		},
		histos: map[string]prometheus.Observer{
			MetricPressDuration: pressDuration,
		},
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.log.Info(msg, kvPairs(fields)...)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	p.log.Error(err, msg, kvPairs(fields)...)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func kvPairs(fields []ports.Field) []any {
	if len(fields) == 0 {
		return nil
	}
	kv := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

var _ ports.Observability = (*PromObs)(nil)
