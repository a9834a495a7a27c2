package snapcheck

import "os"

// ShowHelp prints usage information for the snapshot check tool.
func ShowHelp() {
	os.Stdout.WriteString(`Pundit Snapshot Check Tool
==========================

Runs a CSV export through the full ingestion pipeline without starting the
service, and reports what the schema resolver bound and what the validation
gate decided. Use it before promoting a new sheet export or baseline file.

Usage:
  go run cmd/snapshot-check/main.go [options]

Options:
  -file string
        Local CSV file to check
  -url string
        Remote CSV endpoint to check (ignored when -file is set)
  -timeout duration
        HTTP request timeout for remote checks (default 30s)
  -predictions
        Treat the input as the open-predictions sheet
  -verbose
        Print per-field binding detail
  -help
        Show this help message

Examples:
  # Check a candidate baseline file
  go run cmd/snapshot-check/main.go -file data/baseline.csv

  # Check the live primary export
  go run cmd/snapshot-check/main.go -url "https://docs.google.com/.../pub?output=csv"

  # Check the open-predictions sheet
  go run cmd/snapshot-check/main.go -url "https://..." -predictions
`)
}
