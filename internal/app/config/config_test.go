package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "files:\n  file_prefix: CUSTOM\n"))
	require.NoError(t, err)

	assert.Equal(t, 17, cfg.GPIO.PinRed)
	assert.Equal(t, 27, cfg.GPIO.PinGreen)
	assert.Equal(t, 22, cfg.GPIO.PinBlue)
	assert.Equal(t, 18, cfg.GPIO.ButtonPin)
	assert.Equal(t, 23, cfg.GPIO.StatusLED)
	assert.Equal(t, 24, cfg.GPIO.SuccessLED)
	assert.Equal(t, 25, cfg.GPIO.ErrorLED)

	assert.Equal(t, 500*time.Millisecond, cfg.Behavior.BlinkDuration)
	assert.Equal(t, 3, cfg.Behavior.Retries())
	assert.Equal(t, 2*time.Second, cfg.Behavior.RetryDelay)
	assert.Equal(t, 2*time.Second, cfg.Behavior.SuccessHold)

	assert.Equal(t, "CUSTOM", cfg.Files.Prefix)
	assert.Equal(t, "./data_logs", cfg.Files.SaveDirectory)
	assert.Equal(t, ".txt", cfg.Files.Extension)

	assert.Equal(t, "8.8.8.8", cfg.Network.TestHost)
	assert.Equal(t, 53, cfg.Network.TestPort)
	assert.Equal(t, 5*time.Second, cfg.Network.CheckInterval)
	assert.Equal(t, 3*time.Second, cfg.Network.ProbeTimeout)

	assert.False(t, cfg.ReplicationEnabled())
}

func TestLoadMaterializesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().GPIO, cfg.GPIO)

	// The file now exists and round-trips.
	_, err = os.Stat(path)
	require.NoError(t, err)
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadPreservesExplicitZeroRetries(t *testing.T) {
	cfg, err := Load(writeConfig(t, "behavior:\n  max_retries: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Behavior.Retries())
}

func TestLoadRejectsNegativeRetries(t *testing.T) {
	_, err := Load(writeConfig(t, "behavior:\n  max_retries: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_retries")
}

func TestLoadRejectsDuplicatePins(t *testing.T) {
	_, err := Load(writeConfig(t, "gpio:\n  pin_red: 23\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pin 23")
}

func TestLoadRejectsBadPort(t *testing.T) {
	_, err := Load(writeConfig(t, "network:\n  test_port: 70000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test_port")
}

func TestLoadRemoteRequiresUserAndPath(t *testing.T) {
	_, err := Load(writeConfig(t, "remote:\n  host: lab-host\n  path: /srv/data\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote.user")

	_, err = Load(writeConfig(t, "remote:\n  host: lab-host\n  user: pi\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote.path")

	cfg, err := Load(writeConfig(t, "remote:\n  host: lab-host\n  user: pi\n  path: /srv/data\n"))
	require.NoError(t, err)
	assert.True(t, cfg.ReplicationEnabled())
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "behavior: [not a map\n"))
	require.Error(t, err)
}
