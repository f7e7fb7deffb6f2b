package engine

import (
	"math/rand"

	"github.com/mkret/seihrd/internal/domain/disease"
	"github.com/mkret/seihrd/pkg/logger"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithParams replaces the model parameter table.
func WithParams(params disease.Params) Option {
	return func(e *Engine) {
		e.params = params
	}
}

// WithWorkers shards the per-day person loop across the given number of
// goroutines. Values below two keep the loop sequential.
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithRand sets the random source, letting callers make runs reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithReporter sets the trajectory reporter receiving completed day rows.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithProgressInterval sets how many days pass between progress log lines.
// Zero disables progress logging.
func WithProgressInterval(days int) Option {
	return func(e *Engine) {
		if days >= 0 {
			e.progressInterval = days
		}
	}
}
