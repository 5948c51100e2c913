package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds run defaults loaded from a YAML file. Zero-valued pointer
// fields mean "not set in the file"; command-line flags always win.
type Config struct {
	Threshold  *float64 `yaml:"threshold,omitempty"`
	Column     *int     `yaml:"column,omitempty"`
	Organism   string   `yaml:"organism,omitempty"`
	Delimiter  string   `yaml:"delimiter,omitempty"`
	Wrap       *int     `yaml:"wrap,omitempty"`
	Duplicates string   `yaml:"duplicates,omitempty"`
	Exclude    []string `yaml:"exclude,omitempty"`
	Verbose    bool     `yaml:"verbose,omitempty"`
	Quiet      bool     `yaml:"quiet,omitempty"`
}

// Default is the configuration used when no file is given: nothing set.
func Default() *Config { return &Config{} }

// Load reads the YAML file at path. An empty path returns Default (not an
// error); a named file that is missing or malformed is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Threshold != nil && (*cfg.Threshold < 0 || *cfg.Threshold > 100) {
		return nil, fmt.Errorf("config %s: threshold %.2f outside [0,100]", path, *cfg.Threshold)
	}
	if cfg.Column != nil && *cfg.Column < 0 {
		return nil, fmt.Errorf("config %s: column must be >= 0", path)
	}
	return &cfg, nil
}

// FloatOr returns *p, or def when p is nil.
func FloatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// IntOr returns *p, or def when p is nil.
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// StringOr returns s, or def when s is empty.
func StringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
