package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	GPIO     GPIOConfig     `yaml:"gpio"`
	Behavior BehaviorConfig `yaml:"behavior"`
	Files    FileConfig     `yaml:"files"`
	Network  NetworkConfig  `yaml:"network"`
	Remote   *RemoteConfig  `yaml:"remote,omitempty"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// GPIOConfig holds BCM pin assignments.
type GPIOConfig struct {
	PinRed     int `yaml:"pin_red"`
	PinGreen   int `yaml:"pin_green"`
	PinBlue    int `yaml:"pin_blue"`
	ButtonPin  int `yaml:"button_pin"`
	StatusLED  int `yaml:"status_led"`
	SuccessLED int `yaml:"success_led"`
	ErrorLED   int `yaml:"error_led"`
}

type BehaviorConfig struct {
	BlinkDuration time.Duration `yaml:"blink_duration"`
	// MaxRetries is a pointer so an explicit 0 (single attempt, no retries)
	// survives default filling.
	MaxRetries   *int          `yaml:"max_retries"`
	RetryDelay   time.Duration `yaml:"retry_delay"`
	PollInterval time.Duration `yaml:"poll_interval"`
	// PressHold keeps the status light visible before the first attempt.
	PressHold   time.Duration `yaml:"press_hold"`
	SuccessHold time.Duration `yaml:"success_hold"`
}

type FileConfig struct {
	SaveDirectory string `yaml:"save_directory"`
	Prefix        string `yaml:"file_prefix"`
	Extension     string `yaml:"file_extension"`
}

type NetworkConfig struct {
	TestHost      string        `yaml:"test_host"`
	TestPort      int           `yaml:"test_port"`
	CheckInterval time.Duration `yaml:"check_interval"`
	ProbeTimeout  time.Duration `yaml:"probe_timeout"`
}

// RemoteConfig is optional; leaving the whole group out of the file disables
// replication rather than failing validation.
type RemoteConfig struct {
	User    string        `yaml:"user"`
	Host    string        `yaml:"host"`
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads the config file, materializing a default one first if the path
// does not exist yet.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeDefault(path); err != nil {
			return nil, fmt.Errorf("materialize default config: %w", err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration the controller ships with: the reference
// wiring on BCM pins 17/27/22 for the indicator, 18 for the button, and
// 23/24/25 for the status, success, and error lights.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Retries returns the configured retry budget after the initial attempt.
func (b BehaviorConfig) Retries() int {
	if b.MaxRetries == nil {
		return 3
	}
	return *b.MaxRetries
}

// ReplicationEnabled reports whether a remote target is configured.
func (c *Config) ReplicationEnabled() bool {
	return c.Remote != nil && c.Remote.Host != ""
}

func (c *Config) applyDefaults() {
	if c.GPIO.PinRed == 0 {
		c.GPIO.PinRed = 17
	}
	if c.GPIO.PinGreen == 0 {
		c.GPIO.PinGreen = 27
	}
	if c.GPIO.PinBlue == 0 {
		c.GPIO.PinBlue = 22
	}
	if c.GPIO.ButtonPin == 0 {
		c.GPIO.ButtonPin = 18
	}
	if c.GPIO.StatusLED == 0 {
		c.GPIO.StatusLED = 23
	}
	if c.GPIO.SuccessLED == 0 {
		c.GPIO.SuccessLED = 24
	}
	if c.GPIO.ErrorLED == 0 {
		c.GPIO.ErrorLED = 25
	}

	if c.Behavior.BlinkDuration == 0 {
		c.Behavior.BlinkDuration = 500 * time.Millisecond
	}
	if c.Behavior.MaxRetries == nil {
		retries := 3
		c.Behavior.MaxRetries = &retries
	}
	if c.Behavior.RetryDelay == 0 {
		c.Behavior.RetryDelay = 2 * time.Second
	}
	if c.Behavior.PollInterval == 0 {
		c.Behavior.PollInterval = 100 * time.Millisecond
	}
	if c.Behavior.PressHold == 0 {
		c.Behavior.PressHold = 500 * time.Millisecond
	}
	if c.Behavior.SuccessHold == 0 {
		c.Behavior.SuccessHold = 2 * time.Second
	}

	if c.Files.SaveDirectory == "" {
		c.Files.SaveDirectory = "./data_logs"
	}
	if c.Files.Prefix == "" {
		c.Files.Prefix = "TEST_DATA"
	}
	if c.Files.Extension == "" {
		c.Files.Extension = ".txt"
	}

	if c.Network.TestHost == "" {
		c.Network.TestHost = "8.8.8.8"
	}
	if c.Network.TestPort == 0 {
		c.Network.TestPort = 53
	}
	if c.Network.CheckInterval == 0 {
		c.Network.CheckInterval = 5 * time.Second
	}
	if c.Network.ProbeTimeout == 0 {
		c.Network.ProbeTimeout = 3 * time.Second
	}

	if c.Remote != nil && c.Remote.Timeout == 0 {
		c.Remote.Timeout = 30 * time.Second
	}

	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
}

func (c *Config) validate() error {
	pins := map[string]int{
		"gpio.pin_red":     c.GPIO.PinRed,
		"gpio.pin_green":   c.GPIO.PinGreen,
		"gpio.pin_blue":    c.GPIO.PinBlue,
		"gpio.button_pin":  c.GPIO.ButtonPin,
		"gpio.status_led":  c.GPIO.StatusLED,
		"gpio.success_led": c.GPIO.SuccessLED,
		"gpio.error_led":   c.GPIO.ErrorLED,
	}
	seen := make(map[int]string, len(pins))
	for name, pin := range pins {
		if pin < 0 {
			return fmt.Errorf("%s: pin must be >= 0, got %d", name, pin)
		}
		if other, dup := seen[pin]; dup {
			return fmt.Errorf("%s and %s both assigned to pin %d", name, other, pin)
		}
		seen[pin] = name
	}

	if r := c.Behavior.Retries(); r < 0 {
		return fmt.Errorf("behavior.max_retries must be >= 0, got %d", r)
	}
	if c.Behavior.BlinkDuration < 0 || c.Behavior.RetryDelay < 0 {
		return fmt.Errorf("behavior durations must be >= 0")
	}
	if c.Network.TestHost == "" {
		return fmt.Errorf("network.test_host is required")
	}
	if c.Network.TestPort <= 0 || c.Network.TestPort > 65535 {
		return fmt.Errorf("network.test_port out of range: %d", c.Network.TestPort)
	}
	if c.Files.SaveDirectory == "" {
		return fmt.Errorf("files.save_directory is required")
	}
	if c.Remote != nil && c.Remote.Host != "" {
		if c.Remote.User == "" {
			return fmt.Errorf("remote.user is required when remote.host is set")
		}
		if c.Remote.Path == "" {
			return fmt.Errorf("remote.path is required when remote.host is set")
		}
	}
	return nil
}

func writeDefault(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
