// Package config defines simulation configuration structures and loading
// hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration for a scenario sweep.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// OutputDir is where trajectory logs are written.
	OutputDir string `koanf:"output_dir"`

	// Days is the default simulation length; scenarios may override it.
	Days int `koanf:"days"`

	// Families is the population spec: Families[i] is the number of
	// households of size i+1.
	Families []int `koanf:"families"`

	// InitialExposed is the number of persons exposed on day 0.
	InitialExposed int `koanf:"initial_exposed"`

	// NHSOverload is the hospitalised-count capacity threshold, downscaled
	// to the configured population size.
	NHSOverload int `koanf:"nhs_overload"`

	// Seed fixes the base random seed; zero means time-based.
	Seed int64 `koanf:"seed"`

	// SweepWorkers bounds how many scenarios run concurrently.
	SweepWorkers int `koanf:"sweep_workers"`

	// EngineWorkers shards each run's per-day person loop.
	EngineWorkers int `koanf:"engine_workers"`
}

// New creates a Config with defaults. The default population is the
// reference household mix (1.0M singles, 1.3M pairs, 0.2M triples)
// downscaled by 100, with the capacity threshold downscaled to match.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		OutputDir:      ".",
		Days:           365,
		Families:       []int{10_000, 13_000, 2_000},
		InitialExposed: 100,
		NHSOverload:    20,
		Seed:           0,
		SweepWorkers:   2,
		EngineWorkers:  runtime.NumCPU(),
	}
}
