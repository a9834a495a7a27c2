package validate

import "errors"

// Sentinel kinds for ingestion validation failures.
var (
	// ErrHTMLPayload means the fetched payload opens with markup, the usual
	// signature of an auth or redirect page served instead of CSV.
	ErrHTMLPayload = errors.New("payload looks like HTML, not CSV")

	// ErrSchemaMismatch means the creator-name column did not bind. Fatal:
	// without identity every other column is meaningless, and no alias-table
	// fix is possible at runtime.
	ErrSchemaMismatch = errors.New("creator column did not resolve against alias table")

	// ErrEmptyDataset means no data rows followed the header.
	ErrEmptyDataset = errors.New("dataset has no data rows")

	// ErrDataQuality means records parsed but none carries a finite headline
	// metric, the canonical symptom of renamed headers binding to the wrong
	// columns. Signals the alias table needs maintenance.
	ErrDataQuality = errors.New("no record has a finite headline metric")
)
