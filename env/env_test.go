package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vital-tools/go-vital/logger"
	"github.com/vital-tools/go-vital/memo"
)

func TestFlagOrEnv(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("test-flag", "", "Test flag")

	cmd.Flags().Set("test-flag", "flag-value")
	assert.Equal(t, "flag-value", FlagOrEnv(cmd, "test-flag", "TEST_ENV", "default"))

	cmd.Flags().Set("test-flag", "")
	t.Setenv("TEST_ENV", "env-value")
	assert.Equal(t, "env-value", FlagOrEnv(cmd, "test-flag", "TEST_ENV", "default"))

	os.Unsetenv("TEST_ENV")
	assert.Equal(t, "default", FlagOrEnv(cmd, "test-flag", "TEST_ENV", "default"))
}

func TestLogLevel(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("log-level", "", "Log level")

	testCases := []struct {
		name      string
		flagValue string
		envValue  string
		expected  logger.LogLevel
	}{
		{"debug level via flag", "debug", "", logger.LevelDebug},
		{"debug level via env", "", "DEBUG", logger.LevelDebug},
		{"warn level via flag", "warn", "", logger.LevelWarn},
		{"warn level via env", "", "WARN", logger.LevelWarn},
		{"error level via flag", "error", "", logger.LevelError},
		{"trace level via env", "", "TRACE", logger.LevelTrace},
		{"unknown level", "loud", "", logger.LevelInfo},
		{"default level", "", "", logger.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd.Flags().Set("log-level", tc.flagValue)
			t.Setenv(logger.EnvLogLevel, tc.envValue)
			if tc.envValue == "" {
				os.Unsetenv(logger.EnvLogLevel)
			}
			assert.Equal(t, tc.expected, LogLevel(cmd))
		})
	}
}

func TestNewLogger(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("log-level", "", "Log level")
	cmd.Flags().String("log-format", "", "Log format")
	cmd.Flags().Set("log-level", "warn")

	log := NewLogger(cmd)
	assert.True(t, log.IsLevelEnabled(logger.LevelWarn))
	assert.False(t, log.IsLevelEnabled(logger.LevelInfo))

	cmd.Flags().Set("log-format", "json")
	log = NewLogger(cmd)
	assert.True(t, log.IsLevelEnabled(logger.LevelError))
}

func TestLoadMemoConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "Config file")
	t.Setenv(EnvConfig, "")
	os.Unsetenv(EnvConfig)

	cfg, err := LoadMemoConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, memo.DefaultConfig(), cfg)

	fn := filepath.Join(t.TempDir(), "memo.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("capacity: 3\nttl: 1m\nkey_strategy: serialized\n"), 0o644))
	cmd.Flags().Set("config", fn)
	cfg, err = LoadMemoConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Capacity)
	assert.Equal(t, time.Minute, cfg.TTL)
	assert.Equal(t, memo.KeySerialized, cfg.KeyStrategy)

	cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = LoadMemoConfig(cmd)
	assert.Error(t, err)
}
