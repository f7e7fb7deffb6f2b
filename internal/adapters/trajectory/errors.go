package trajectory

import "errors"

// Sentinel kinds for trajectory log errors.
var (
	ErrOpenLog      = errors.New("open trajectory log failed")
	ErrWriteLog     = errors.New("write trajectory log failed")
	ErrMalformedLog = errors.New("malformed trajectory log")
)
