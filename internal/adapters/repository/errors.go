package repository

import "errors"

// Sentinel kinds for snapshot store errors.
var (
	ErrNoSnapshot = errors.New("no snapshot available")
	ErrNotFound   = errors.New("creator not found")
)
