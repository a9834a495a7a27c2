package snapcheck

import "time"

// Config holds configuration for a snapshot check run.
type Config struct {
	Path        string        // Local CSV file to check
	URL         string        // Remote CSV endpoint to check (used when Path is empty)
	Timeout     time.Duration // HTTP request timeout for remote checks
	Predictions bool          // Treat the input as the open-predictions sheet
	Verbose     bool          // Print per-field binding detail
}
