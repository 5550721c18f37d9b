package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// config holds settings read from .snips.yaml and SNIPS_* environment
// variables. CLI flags take precedence over all of it.
type config struct {
	Quiet   bool     `mapstructure:"quiet"`
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
}

func loadConfig() (config, error) {
	v := viper.New()

	v.SetDefault("quiet", false)
	v.SetDefault("include", []string{"*.md", "*.markdown"})
	v.SetDefault("exclude", []string{})

	v.SetConfigName(".snips")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "snips"))
	}

	v.SetEnvPrefix("SNIPS")
	v.AutomaticEnv()

	// A missing or malformed config file falls back to defaults.
	_ = v.ReadInConfig()

	var cfg config

	err := v.Unmarshal(&cfg)

	return cfg, err
}
