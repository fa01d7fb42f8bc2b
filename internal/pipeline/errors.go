package pipeline

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid source identifier")
	ErrSynthesisFailed = errors.New("speech synthesis failed")

	// ErrRunInFlight rejects a second concurrent request for a cache key that
	// already has an active run, instead of doing the work twice and racing
	// on the cache records.
	ErrRunInFlight = errors.New("a run for this source is already in flight")
)
