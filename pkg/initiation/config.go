package initiation

import "github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/app/config"

// Config re-exports the root configuration struct so downstream projects can
// construct or modify it programmatically.
type Config = config.Config

type (
	// GPIOConfig holds BCM pin assignments.
	GPIOConfig = config.GPIOConfig
	// BehaviorConfig controls blink, retry, and polling timing.
	BehaviorConfig = config.BehaviorConfig
	// FileConfig names the save directory and filename parts.
	FileConfig = config.FileConfig
	// NetworkConfig describes the reachability probe target.
	NetworkConfig = config.NetworkConfig
	// RemoteConfig is the optional replication destination.
	RemoteConfig = config.RemoteConfig
	// MetricsConfig configures the metrics HTTP server.
	MetricsConfig = config.MetricsConfig
)

// LoadConfig loads YAML from disk, materializing a default file on first run.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns the reference wiring and timing.
func DefaultConfig() *Config {
	return config.Default()
}
