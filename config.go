package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds run parameters. Adjust the limits to trade completeness for
// a hard ceiling on runtime.
type Config struct {
	// TimeBudget is the number of steps each blueprint gets for the quality level.
	TimeBudget int `yaml:"time_budget"`
	// ExtendedBudget is the longer budget used for the extended product.
	ExtendedBudget int `yaml:"extended_budget"`
	// ExtendedCount is how many leading blueprints take part in the extended product.
	ExtendedCount int `yaml:"extended_count"`
	// Workers is the number of blueprints solved at once (0 = GOMAXPROCS).
	Workers int `yaml:"workers"`
	// MaxFrontier caps pending states per search (0 = unlimited).
	MaxFrontier int `yaml:"max_frontier"`
	// Timeout caps wall-clock time per search (0 = unlimited).
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the standard parameters.
func DefaultConfig() Config {
	return Config{
		TimeBudget:     24,
		ExtendedBudget: 32,
		ExtendedCount:  3,
	}
}

// Limits returns the per-search limits of c.
func (c Config) Limits() Limits {
	return Limits{MaxFrontier: c.MaxFrontier, Timeout: c.Timeout}
}

// Validate rejects negative settings.
func (c Config) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}
	check("time_budget", c.TimeBudget)
	check("extended_budget", c.ExtendedBudget)
	check("extended_count", c.ExtendedCount)
	check("workers", c.Workers)
	check("max_frontier", c.MaxFrontier)
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %v", c.Timeout))
	}
	return errors.Join(errs...)
}

// LoadConfig overlays the YAML file at path on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Verbose controls whether per-blueprint search statistics are printed to stderr.
var Verbose bool
