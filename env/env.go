// Package env resolves command line settings from cobra flags with an
// environment variable fallback.
package env

import (
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/vital-tools/go-vital/logger"
	"github.com/vital-tools/go-vital/memo"
)

// EnvConfig names the memo config file when --config is not given.
const EnvConfig = "VITAL_CONFIG"

// EnvLogFormat selects the logger format when --log-format is not given.
const EnvLogFormat = "VITAL_LOG_FORMAT"

// FlagOrEnv will try and get a flag from the cobra.Command and if not found, look it up in the environment
// and fallback to defaultValue if non found
func FlagOrEnv(cmd *cobra.Command, flagName string, envName string, defaultValue string) string {
	flagValue, _ := cmd.Flags().GetString(flagName)
	if flagValue != "" {
		return flagValue
	}
	if val, ok := os.LookupEnv(envName); ok {
		return val
	}
	return defaultValue
}

// LogLevel reads the log-level flag or VITAL_LOG_LEVEL. Unknown values fall
// back to info.
func LogLevel(cmd *cobra.Command) logger.LogLevel {
	level := FlagOrEnv(cmd, "log-level", logger.EnvLogLevel, "info")
	if l, ok := logger.ParseLevel(level); ok {
		return l
	}
	return logger.LevelInfo
}

// NewLogger returns a console logger by first checking the cobra.Command log-level flag, then use the
// VITAL_LOG_LEVEL environment value and falling back to the info logger level. A log-format of json
// returns a JSON logger instead.
func NewLogger(cmd *cobra.Command) logger.Logger {
	log.SetFlags(0)
	level := LogLevel(cmd)
	if FlagOrEnv(cmd, "log-format", EnvLogFormat, "console") == "json" {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}

// LoadMemoConfig loads the memo config named by the config flag or
// VITAL_CONFIG. With neither set it returns the default config.
func LoadMemoConfig(cmd *cobra.Command) (memo.Config, error) {
	filename := FlagOrEnv(cmd, "config", EnvConfig, "")
	if filename == "" {
		return memo.DefaultConfig(), nil
	}
	cfg, err := memo.LoadConfig(filename)
	if err != nil {
		return memo.Config{}, errors.Wrapf(err, "loading %s", filename)
	}
	return cfg, nil
}
