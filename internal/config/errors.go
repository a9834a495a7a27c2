package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr       = errors.New("addr must not be empty")
	ErrInvalidInterval = errors.New("refresh_interval_minutes must be positive")
)
