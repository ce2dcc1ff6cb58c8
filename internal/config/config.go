// Package config provides configuration management for provctl.
//
// Purpose:
//
//	Load configuration from environment variables and an optional
//	config file. Uses Viper with clear precedence: flags > environment
//	variables > config file > defaults.
//
// Configuration Sources:
//   - Environment variables: PROVCTL_* prefix (e.g. PROVCTL_LOG_LEVEL)
//   - Config file: ~/.provctl/config.yaml or ./config.yaml
//   - Command-line flags: take precedence over all other sources
//
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all CLI configuration.
type Config struct {
	// OutputFormat is the default rendering: pretty, csv or json.
	OutputFormat string
	// LogLevel controls diagnostic verbosity: debug, info, warn, error.
	LogLevel string
	// ConfigFile is the file the values came from, when one was found.
	ConfigFile string
}

// Load loads configuration from all sources with proper precedence.
func Load() (*Config, error) {
	v := viper.New()

	ApplyDefaults(v)

	v.SetEnvPrefix("PROVCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".provctl"))
	}
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// The config file is optional.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		OutputFormat: v.GetString("defaults.output-format"),
		LogLevel:     v.GetString("defaults.log-level"),
		ConfigFile:   v.ConfigFileUsed(),
	}

	return cfg, nil
}
