package snapcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/okian/pundit/internal/app"
	"github.com/okian/pundit/internal/domain/csvio"
	"github.com/okian/pundit/internal/domain/openpred"
	"github.com/okian/pundit/internal/domain/schema"
	"github.com/okian/pundit/internal/domain/validate"
)

// ErrNoInput is returned when neither a file nor a URL was given.
var ErrNoInput = errors.New("either -file or -url is required")

const maxPayloadBytes = 32 << 20

// Run loads the input, pushes it through the pipeline, and prints a
// binding and validation report. A gate rejection is returned as an error
// so the tool exits non-zero in scripts.
func Run(ctx context.Context, cfg *Config) error {
	text, source, err := loadText(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("input:  %s (%d bytes)\n", source, len(text))

	if cfg.Predictions {
		return checkPredictions(text)
	}
	return checkPerformance(text, cfg.Verbose)
}

func loadText(ctx context.Context, cfg *Config) (string, string, error) {
	if cfg.Path != "" {
		b, err := os.ReadFile(cfg.Path)
		if err != nil {
			return "", "", fmt.Errorf("read file: %w", err)
		}
		return string(b), cfg.Path, nil
	}
	if cfg.URL == "" {
		return "", "", ErrNoInput
	}

	client := &http.Client{Timeout: cfg.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return "", "", fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return "", "", fmt.Errorf("read body: %w", err)
	}
	return string(b), cfg.URL, nil
}

func checkPerformance(text string, verbose bool) error {
	table := schema.PerformanceAliases()

	if verbose {
		printBindingDetail(text, table)
	}

	snap, rep, err := app.Ingest(text, "snapcheck", time.Now(), table)

	fmt.Printf("rows:    %d data rows, %d records, %d skipped\n", rep.Rows, rep.Records, rep.Skipped)
	fmt.Printf("schema:  %d fields bound, %d unbound (table %s)\n", len(rep.Matched), len(rep.Unmatched), table.Version)
	if len(rep.Unmatched) > 0 {
		fmt.Printf("unbound: %v\n", rep.Unmatched)
	}
	fmt.Printf("headline coverage: %d of %d records\n", rep.HeadlineCoverage, rep.Records)

	if err != nil {
		fmt.Printf("verdict: REJECTED (%s)\n", gateName(err))
		return err
	}
	fmt.Printf("verdict: ACCEPTED, snapshot %s with %d creators\n", snap.ID, snap.Count())
	return nil
}

func printBindingDetail(text string, table schema.AliasTable) {
	rows := csvio.Tokenize(text)
	if len(rows) == 0 {
		return
	}
	binding := schema.Resolve(rows[0], table)
	fmt.Println("binding detail:")
	for _, f := range binding.Matched() {
		if col, ok := binding.Col(f); ok {
			fmt.Printf("  %-22s -> column %d (%q)\n", f, col, rows[0][col])
		}
	}
	for _, f := range binding.Unmatched() {
		fmt.Printf("  %-22s -> (unbound)\n", f)
	}
}

func checkPredictions(text string) error {
	preds, err := openpred.Parse(text)
	if err != nil {
		fmt.Printf("verdict: REJECTED (%s)\n", gateName(err))
		return err
	}
	fmt.Printf("verdict: ACCEPTED, %d open predictions\n", len(preds))
	for i, p := range preds {
		if i >= 5 {
			fmt.Printf("  ... and %d more\n", len(preds)-5)
			break
		}
		fmt.Printf("  %s %s %s since %s\n", p.CreatorID, p.Direction, p.Ticker, p.PredictionDate)
	}
	return nil
}

// gateName names the validation gate that fired, for human eyes.
func gateName(err error) string {
	switch {
	case errors.Is(err, validate.ErrHTMLPayload):
		return "html payload"
	case errors.Is(err, validate.ErrSchemaMismatch):
		return "schema mismatch"
	case errors.Is(err, validate.ErrEmptyDataset):
		return "empty dataset"
	case errors.Is(err, validate.ErrDataQuality):
		return "data quality"
	default:
		return err.Error()
	}
}
