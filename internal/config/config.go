// Package config provides configuration for eecalc.
//
// Everything is optional: without a config file the calculator runs on
// defaults. The file controls presentation (which parts of a rendered
// quantity to show), where session variables are persisted, and the
// sensitivity sweep.
//
// Config file locations (priority order):
//  1. $EECALC_CONFIG
//  2. ./eecalc.yaml
//  3. ~/.config/eecalc/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"eecalc/internal/domain/format"
)

// Config is the top-level configuration.
type Config struct {
	Version int           `yaml:"version"`
	Session SessionConfig `yaml:"session"`
	Output  OutputConfig  `yaml:"output"`
	Sweep   []float64     `yaml:"sweep,omitempty"` // sensitivity sweep, fractions
}

// SessionConfig controls variable persistence.
type SessionConfig struct {
	Path string `yaml:"path"` // bbolt database file
	Name string `yaml:"name"` // default session name
}

// OutputConfig toggles parts of the rendered quantity text.
type OutputConfig struct {
	Tolerance   bool `yaml:"tolerance"`
	Variation   bool `yaml:"variation"`
	Range       bool `yaml:"range"`
	Temperature bool `yaml:"temperature"`
}

// Options converts the output toggles into formatter options.
func (o OutputConfig) Options() format.Options {
	return format.Options{
		Value:       true,
		Tolerance:   o.Tolerance,
		Variation:   o.Variation,
		Range:       o.Range,
		Temperature: o.Temperature,
	}
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Version: 1,
		Session: SessionConfig{
			Path: filepath.Join(home, ".eecalc", "eecalc.db"),
			Name: "default",
		},
		Output: OutputConfig{
			Tolerance:   true,
			Variation:   true,
			Range:       true,
			Temperature: true,
		},
	}
}

// FindConfigPath returns the first existing config file path, or "".
func FindConfigPath() string {
	if path := os.Getenv("EECALC_CONFIG"); path != "" {
		return path
	}

	candidates := []string{"./eecalc.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "eecalc", "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load finds and loads the config file, or returns defaults if none found.
// The second result is the path the config came from ("" for defaults).
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

// LoadFromPath loads config from a specific path. Missing keys keep their
// default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes config to the specified path, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
