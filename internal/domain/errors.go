package domain

import "errors"

// ErrNoPaintsResolved is the only error that fails a whole request. Everything
// else below is per-job and absorbed by the placeholder fallback.
var (
	ErrNoPaintsResolved = errors.New("no matching paints")

	ErrBackendNotReady     = errors.New("backend not ready")
	ErrBackendSubmitFailed = errors.New("backend submit failed")
	ErrEmptyOutput         = errors.New("backend returned no output")
	ErrBackendFailure      = errors.New("backend reported failure")
	ErrPollTimeout         = errors.New("generation polling timed out")
)
