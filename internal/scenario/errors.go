package scenario

import "errors"

// Sentinel kinds for scenario failures.
var (
	ErrInvalidConfig = errors.New("invalid scenario config")
	ErrStep          = errors.New("scenario step failed")
	ErrVerify        = errors.New("scenario verification failed")
)
