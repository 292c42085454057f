// Package initiation re-exports the public runtime so consumers can import
// the module root directly.
package initiation

import (
	base "github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/pkg/initiation"
)

// Type aliases so consumers can import the module root directly.
type (
	Config         = base.Config
	GPIOConfig     = base.GPIOConfig
	BehaviorConfig = base.BehaviorConfig
	FileConfig     = base.FileConfig
	NetworkConfig  = base.NetworkConfig
	RemoteConfig   = base.RemoteConfig
	MetricsConfig  = base.MetricsConfig
	Runtime        = base.Runtime
	RuntimeOption  = base.RuntimeOption
	Record         = base.Record
	Press          = base.Press
	DigitalIO      = base.DigitalIO
	Indicator      = base.Indicator
	Color          = base.Color
	Light          = base.Light
	Prober         = base.Prober
	Replicator     = base.Replicator
	RemoteTarget   = base.RemoteTarget
	RecordWriter   = base.RecordWriter
	Observability  = base.Observability
	Field          = base.Field
	MemoryGPIO     = base.MemoryGPIO
	CopyFunc       = base.CopyFunc
)

var (
	ColorOff   = base.ColorOff
	ColorRed   = base.ColorRed
	ColorGreen = base.ColorGreen
)

const (
	LightStatus  = base.LightStatus
	LightSuccess = base.LightSuccess
	LightError   = base.LightError
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

func DefaultConfig() *Config {
	return base.DefaultConfig()
}

// Runtime construction and options.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	return base.NewRuntime(cfg, opts...)
}

func WithDigitalIO(io DigitalIO) RuntimeOption {
	return base.WithDigitalIO(io)
}

func WithIndicator(ind Indicator) RuntimeOption {
	return base.WithIndicator(ind)
}

func WithProber(p Prober) RuntimeOption {
	return base.WithProber(p)
}

func WithReplicator(r Replicator) RuntimeOption {
	return base.WithReplicator(r)
}

func WithRecordWriter(w RecordWriter) RuntimeOption {
	return base.WithRecordWriter(w)
}

func WithObservability(obs Observability) RuntimeOption {
	return base.WithObservability(obs)
}

func WithContinuous() RuntimeOption {
	return base.WithContinuous()
}

// Adapters.
func NewMemoryGPIO() *MemoryGPIO {
	return base.NewMemoryGPIO()
}

func NewCallbackReplicator(name string, fn CopyFunc) Replicator {
	return base.NewCallbackReplicator(name, fn)
}

// CheckNetwork runs a single reachability probe.
func CheckNetwork(cfg *Config) bool {
	return base.CheckNetwork(cfg)
}
