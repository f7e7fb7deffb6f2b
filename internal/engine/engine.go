// Package engine runs the day-by-day SEIHRD microsimulation over a
// population and its contact graph.
package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/mkret/seihrd/internal/domain/disease"
	"github.com/mkret/seihrd/internal/domain/population"
	"github.com/mkret/seihrd/internal/domain/status"
	"github.com/mkret/seihrd/pkg/logger"
	"github.com/mkret/seihrd/pkg/metrics"
)

const defaultProgressInterval = 50

// Reporter consumes completed day rows, typically persisting them to a
// trajectory log. WriteDay is called exactly once per day, in increasing day
// order, after the row is final.
type Reporter interface {
	WriteDay(day int, row []status.Status) error
}

// Engine computes the status grid for one simulation run. The population and
// contact graph are read-only during the run; each day's row is derived from
// previously finalized rows only.
type Engine struct {
	params           disease.Params
	workers          int
	rng              *rand.Rand
	reporter         Reporter
	logger           logger.Logger
	progressInterval int
}

// New creates an engine with the reference parameter table and a
// time-seeded random source.
func New(opts ...Option) *Engine {
	e := &Engine{
		params:           disease.Default(),
		workers:          1,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // simulation randomness, not security sensitive
		progressInterval: defaultProgressInterval,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run simulates the given number of days and returns the full status grid.
// Day 0 holds nInitExposed uniformly chosen exposed persons; every later day
// is derived from the previous day's row and fixed lookback rows.
func (e *Engine) Run(ctx context.Context, days int, pop *population.Population, nInitExposed int) (*Grid, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}
	if pop == nil || pop.Len() == 0 {
		return nil, ErrNoPopulation
	}
	n := pop.Len()
	if nInitExposed < 0 || nInitExposed > n {
		return nil, fmt.Errorf("%w: %d exposed in a population of %d", ErrInvalidExposed, nInitExposed, n)
	}
	if err := e.params.Validate(); err != nil {
		return nil, err
	}

	if e.logger == nil {
		e.logger = logger.Get().Named("engine")
	}
	metrics.UpdatePopulationSize(n)

	grid := newGrid(days, n)

	// Expose the initial persons, then permute the row: equivalent to
	// sampling a uniformly random subset of that size.
	row0 := grid.rows[0]
	for i := 0; i < nInitExposed; i++ {
		row0[i] = status.Exposed
	}
	e.rng.Shuffle(n, func(i, j int) {
		row0[i], row0[j] = row0[j], row0[i]
	})

	if err := e.report(0, row0); err != nil {
		return nil, err
	}

	for day := 1; day < days; day++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation cancelled on day %d: %w", day, err)
		}

		start := time.Now()

		hospitalised := countInRow(grid.rows[day-1], status.Hospitalised)
		hd := e.params.HospitalDeathProb(hospitalised)
		if hd > e.params.BaseHD {
			metrics.RecordOverloadDay()
		}

		if err := e.simulateDay(grid, pop, day, hd); err != nil {
			return nil, err
		}

		if err := e.report(day, grid.rows[day]); err != nil {
			return nil, err
		}

		metrics.RecordDaySimulated()
		metrics.ObserveDayDuration(float64(time.Since(start).Milliseconds()))

		if e.progressInterval > 0 && day%e.progressInterval == 0 {
			e.logProgress(ctx, grid, day, hospitalised)
		}
	}

	e.publishStatusCounts(grid.rows[days-1])
	return grid, nil
}

// simulateDay fills the row for one day from the previous rows. The
// per-person computations only read finalized rows and write disjoint cells,
// so they are sharded across workers when configured.
func (e *Engine) simulateDay(grid *Grid, pop *population.Population, day int, hd float64) error {
	n := pop.Len()
	if e.workers <= 1 || n < e.workers {
		return e.simulateRange(e.rng, grid, pop, day, hd, 0, n)
	}

	// Each shard gets its own random source seeded from the engine's, so
	// shards never contend on the shared generator.
	errs := make(chan error, e.workers)
	chunk := (n + e.workers - 1) / e.workers
	running := 0
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		rng := rand.New(rand.NewSource(e.rng.Int63())) //nolint:gosec // simulation randomness, not security sensitive
		running++
		go func(lo, hi int) {
			errs <- e.simulateRange(rng, grid, pop, day, hd, lo, hi)
		}(lo, hi)
	}

	var firstErr error
	for i := 0; i < running; i++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (e *Engine) simulateRange(rng *rand.Rand, grid *Grid, pop *population.Population, day int, hd float64, lo, hi int) error {
	for i := lo; i < hi; i++ {
		next, err := e.nextStatus(rng, grid, pop, day, i, hd)
		if err != nil {
			return fmt.Errorf("day %d person %d: %w", day, i, err)
		}
		grid.rows[day][i] = next
	}
	return nil
}

// nextStatus applies the transition rule for one person, reading only the
// previous day's row and the fixed lookback rows.
func (e *Engine) nextStatus(rng *rand.Rand, grid *Grid, pop *population.Population, day, i int, hd float64) (status.Status, error) {
	p := e.params
	prev := grid.At(day-1, i)

	switch {
	case prev.Terminal():
		return prev, nil

	case prev == status.Susceptible || prev == status.Exposed:
		pressure := exposurePressure(grid, pop, day, i)

		// Infection risk is only evaluated for persons who were exposed
		// exactly EITime days ago; before day EITime nobody qualifies.
		if day < p.EITime || grid.At(day-p.EITime, i) != status.Exposed {
			return disease.Choose(rng,
				[]status.Status{status.Exposed, status.Susceptible},
				[]float64{pressure, 1 - pressure})
		}
		return disease.Choose(rng,
			[]status.Status{status.Infected, status.Susceptible, status.Exposed},
			[]float64{p.EIProb, (1 - pressure) * (1 - p.EIProb), pressure * (1 - p.EIProb)})

	case prev == status.Infected:
		ir := 0.0
		if day >= p.MinIRTime && grid.At(day-p.MinIRTime, i) == status.Infected {
			ir = p.IR
		}
		return disease.Choose(rng,
			[]status.Status{status.Recovered, status.Hospitalised, status.Infected},
			[]float64{ir, p.IH, 1 - (ir + p.IH)})

	case prev == status.Hospitalised:
		hr := 0.0
		if day >= p.MinHRTime && grid.At(day-p.MinHRTime, i) == status.Hospitalised {
			hr = p.HR
		}
		death := 0.0
		if day >= p.MinHDTime && grid.At(day-p.MinHDTime, i) == status.Hospitalised {
			death = hd
		}
		return disease.Choose(rng,
			[]status.Status{status.Hospitalised, status.Recovered, status.Dead},
			[]float64{1 - (hr + death), hr, death})

	default:
		return 0, fmt.Errorf("%w: %d", ErrUndefinedStatus, prev)
	}
}

// exposurePressure is the capped sum of contact frequencies with persons who
// were infected on the previous day. Household edges carry the saturating
// sentinel, so any infected household member forces the pressure to one.
func exposurePressure(grid *Grid, pop *population.Population, day, i int) float64 {
	sum := 0.0
	for _, c := range pop.Persons[i].Contacts {
		if grid.At(day-1, c.Person) == status.Infected {
			sum += c.Frequency
		}
	}
	return math.Min(1, sum)
}

func (e *Engine) report(day int, row []status.Status) error {
	if e.reporter == nil {
		return nil
	}
	if err := e.reporter.WriteDay(day, row); err != nil {
		return fmt.Errorf("%w: day %d: %v", ErrReporterFailed, day, err)
	}
	return nil
}

func (e *Engine) logProgress(ctx context.Context, grid *Grid, day, hospitalised int) {
	row := grid.rows[day]
	e.logger.Info(ctx, "simulated day",
		logger.Int("day", day),
		logger.Int("infected", countInRow(row, status.Infected)),
		logger.Int("hospitalised", hospitalised),
		logger.Int("dead", countInRow(row, status.Dead)),
	)
	e.publishStatusCounts(row)
}

func (e *Engine) publishStatusCounts(row []status.Status) {
	for _, s := range status.All() {
		metrics.UpdateStatusCount(s.String(), countInRow(row, s))
	}
}
