package contact

import "math/rand"

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithRand sets the random source, letting callers make graph construction
// reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(b *Builder) {
		if rng != nil {
			b.rng = rng
		}
	}
}
