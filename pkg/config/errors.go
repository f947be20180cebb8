package config

import "errors"

var (
	ErrParsingConfig  = errors.New("config: failed to parse environment variables")
	ErrInvalidConfig  = errors.New("config: validation failed")
	ErrNilPointer     = errors.New("config: nil pointer provided")
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
