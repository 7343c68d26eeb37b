package config

import "errors"

var (
	// ErrParsingConfig wraps env parsing failures, such as a malformed bool or a missing required variable.
	ErrParsingConfig = errors.New("config: parse environment")

	// ErrLoadingEnvFile wraps a failure to read a file passed to WithEnvFiles.
	ErrLoadingEnvFile = errors.New("config: load env file")

	// ErrNilPointer is returned by Load for a nil target.
	ErrNilPointer = errors.New("config: nil target")
)
