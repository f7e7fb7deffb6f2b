// Package app provides the core service that wires the population, contact
// graph, engine, and trajectory reporting into scenario sweeps.
package app

import (
	"context"

	"github.com/mkret/seihrd/internal/domain/disease"
	"github.com/mkret/seihrd/internal/scenario"
	"github.com/mkret/seihrd/pkg/logger"
)

// Service runs the configured policy scenario sweep. Every sweep builds its
// own populations and engines, so no state persists between runs.
type Service struct {
	families       []int
	days           int
	initialExposed int
	nhsOverload    int
	outputDir      string
	seed           int64
	sweepWorkers   int
	engineWorkers  int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFamilies sets the population spec (households per size).
func WithFamilies(families []int) Option {
	return func(s *Service) {
		if len(families) > 0 {
			s.families = families
		}
	}
}

// WithDays sets the default simulation length.
func WithDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.days = days
		}
	}
}

// WithInitialExposed sets the number of persons exposed on day 0.
func WithInitialExposed(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.initialExposed = n
		}
	}
}

// WithNHSOverload sets the hospital capacity threshold for this population
// scale. Zero keeps the reference table value.
func WithNHSOverload(threshold int) Option {
	return func(s *Service) {
		if threshold > 0 {
			s.nhsOverload = threshold
		}
	}
}

// WithOutputDir sets the directory for trajectory logs.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.outputDir = dir
		}
	}
}

// WithSeed fixes the base random seed; zero keeps time-based seeding.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithSweepWorkers bounds concurrent scenario runs.
func WithSweepWorkers(workers int) Option {
	return func(s *Service) {
		if workers > 0 {
			s.sweepWorkers = workers
		}
	}
}

// WithEngineWorkers shards each run's per-day person loop.
func WithEngineWorkers(workers int) Option {
	return func(s *Service) {
		if workers > 0 {
			s.engineWorkers = workers
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with a small default population, suitable for
// local runs; production sweeps configure everything explicitly.
func New(opts ...Option) *Service {
	s := &Service{
		families:       []int{100, 130, 20},
		days:           365,
		initialExposed: 10,
		outputDir:      ".",
		sweepWorkers:   1,
		engineWorkers:  1,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run sweeps the preset policy ladder and returns one result per scenario.
func (s *Service) Run(ctx context.Context) ([]scenario.Result, error) {
	return s.RunScenarios(ctx, scenario.Presets())
}

// RunScenarios sweeps an explicit scenario list.
func (s *Service) RunScenarios(ctx context.Context, scenarios []scenario.Scenario) ([]scenario.Result, error) {
	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}

	params := disease.Default()
	if s.nhsOverload > 0 {
		params.NHSOverload = s.nhsOverload
	}

	s.logger.Info(ctx, "starting scenario sweep",
		logger.Int("scenarios", len(scenarios)),
		logger.Int("days", s.days),
		logger.Int("initialExposed", s.initialExposed),
		logger.Int("sweepWorkers", s.sweepWorkers),
		logger.Int("engineWorkers", s.engineWorkers),
	)

	runner := scenario.NewRunner(s.families, s.days, s.initialExposed,
		scenario.WithParams(params),
		scenario.WithOutputDir(s.outputDir),
		scenario.WithSweepWorkers(s.sweepWorkers),
		scenario.WithEngineWorkers(s.engineWorkers),
		scenario.WithSeed(s.seed),
		scenario.WithLogger(s.logger),
	)

	results, err := runner.Sweep(ctx, scenarios)
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		s.logger.Info(ctx, "scenario summary",
			logger.String("scenario", res.Scenario.Name),
			logger.Int("deaths", res.Deaths),
			logger.Int("peakHospitalised", res.PeakHospitalised),
		)
	}
	return results, nil
}
