package engine

import "errors"

// Sentinel kinds for simulation errors.
var (
	ErrInvalidDays     = errors.New("day range must cover at least one day")
	ErrNoPopulation    = errors.New("population is missing or empty")
	ErrInvalidExposed  = errors.New("initial exposed count out of range")
	ErrReporterFailed  = errors.New("trajectory reporter failed")
	ErrUndefinedStatus = errors.New("person in undefined status")
)
