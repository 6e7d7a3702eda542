// Package ioconfig loads gtdbdl configuration from files, environment
// variables and defaults.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gtdbdl/pkg/config"
	"github.com/spf13/viper"
)

// Load reads configuration from a YAML file with GTDBDL_* environment
// overrides. If configPath is empty the default location is tried; a
// missing default file is not an error and yields defaults + env.
func Load(configPath string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("GTDBDL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults registered up front so env vars resolve even without a
	// config file.
	defaults := config.Defaults()
	v.SetDefault("base_dir", defaults.BaseDir)
	v.SetDefault("mirror", defaults.Mirror)
	v.SetDefault("dataset", defaults.Dataset)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if defaultPath, err := DefaultConfigPath(); err == nil {
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			v.SetConfigFile(defaultPath)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" || v.ConfigFileUsed() != "" {
				return nil, fmt.Errorf("cannot read config file: %w", err)
			}
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal config: %w", err)
	}

	cfg.MergeWithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
