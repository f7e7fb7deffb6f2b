package disease

import "errors"

// Sentinel kinds for model parameter and sampling errors.
var (
	ErrInvalidParams  = errors.New("invalid model parameters")
	ErrWeightMismatch = errors.New("candidate and weight counts differ")
	ErrNegativeWeight = errors.New("negative transition weight")
	ErrZeroWeights    = errors.New("transition weights sum to zero")
)
