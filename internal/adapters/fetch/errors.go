package fetch

import (
	"errors"
	"fmt"
)

// Sentinel kinds for fetch errors.
var (
	ErrNoEndpoints = errors.New("no endpoints configured")
	ErrRateLimited = errors.New("fetch rate limit exceeded")
)

// IngestError carries both underlying causes when the primary and the
// secondary endpoint fail in turn.
type IngestError struct {
	Primary   error
	Secondary error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("both endpoints failed: primary: %v; secondary: %v", e.Primary, e.Secondary)
}

// Unwrap exposes the primary cause for errors.Is/As chains.
func (e *IngestError) Unwrap() error {
	return e.Primary
}
