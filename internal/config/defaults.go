package config

import (
	"github.com/spf13/viper"
)

// ApplyDefaults sets default configuration values in the provided
// Viper instance.
func ApplyDefaults(v *viper.Viper) {
	v.SetDefault("defaults.output-format", "pretty") // pretty, csv
	v.SetDefault("defaults.log-level", "info")
}
