package scenario

import "errors"

// Sentinel kinds for sweep errors.
var (
	ErrNoScenarios = errors.New("no scenarios to run")
)
