package scenario

import (
	"github.com/mkret/seihrd/internal/domain/disease"
	"github.com/mkret/seihrd/pkg/logger"
)

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithParams replaces the model parameter table used by every run.
func WithParams(params disease.Params) Option {
	return func(r *Runner) {
		r.params = params
	}
}

// WithOutputDir sets the directory for trajectory logs.
func WithOutputDir(dir string) Option {
	return func(r *Runner) {
		if dir != "" {
			r.outputDir = dir
		}
	}
}

// WithSweepWorkers bounds how many scenarios run concurrently.
func WithSweepWorkers(workers int) Option {
	return func(r *Runner) {
		if workers > 0 {
			r.sweepWorkers = workers
		}
	}
}

// WithEngineWorkers shards each run's per-day person loop.
func WithEngineWorkers(workers int) Option {
	return func(r *Runner) {
		if workers > 0 {
			r.engineWorkers = workers
		}
	}
}

// WithSeed fixes the base random seed, making the whole sweep reproducible.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		if seed != 0 {
			r.seed = seed
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}
