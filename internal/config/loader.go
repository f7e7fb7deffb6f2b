package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SEIHRD_CONFIG is set
//  3. env (prefix SEIHRD_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SEIHRD_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: SEIHRD_DAYS, SEIHRD_OUTPUT_DIR, ...
	// Map env keys like SEIHRD_OUTPUT_DIR -> output_dir (flat keys),
	// preserving underscores to match koanf tags on the struct.
	envProvider := env.Provider("SEIHRD_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "seihrd_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Days < 1 {
		return fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidConfig, c.Days)
	}
	if len(c.Families) == 0 {
		return fmt.Errorf("%w: families must not be empty", ErrInvalidConfig)
	}
	if c.InitialExposed < 0 {
		return fmt.Errorf("%w: initial_exposed must not be negative, got %d", ErrInvalidConfig, c.InitialExposed)
	}
	if c.NHSOverload < 0 {
		return fmt.Errorf("%w: nhs_overload must not be negative, got %d", ErrInvalidConfig, c.NHSOverload)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	return nil
}
