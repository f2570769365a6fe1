// Package config loads the runner's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no path is given.
const DefaultPath = "advent.yaml"

// Config is the on-disk configuration:
//
//	version: 1
//	input_dir: inputs
//	log_level: info
type Config struct {
	Version  int    `yaml:"version"`
	InputDir string `yaml:"input_dir"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:  1,
		InputDir: "inputs",
		LogLevel: "info",
	}
}

// Load reads path. A missing file yields Default(); unset fields keep their
// defaults. Only version 1 is supported.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("config: unsupported %s version: %d", path, cfg.Version)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level parses LogLevel as a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}
