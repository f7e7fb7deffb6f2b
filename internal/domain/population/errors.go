package population

import "errors"

// Sentinel kinds for population errors.
var (
	ErrInvalidFamilies = errors.New("invalid family size spec")
)
