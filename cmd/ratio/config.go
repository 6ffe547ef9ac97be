package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ratio/src/math/rational"
)

// Config is the on-disk configuration for ratio.
//
//	format:
//	  show_sign: true
//	  force_denominator: false
//	  spaced_slash: true
type Config struct {
	Format rational.FormatOptions `yaml:"format"`
}

// LoadConfig reads a YAML config file. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
