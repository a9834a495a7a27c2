package app

import (
	"context"
	"errors"
	"time"

	"github.com/okian/pundit/internal/adapters/repository"
	"github.com/okian/pundit/internal/domain/csvio"
	"github.com/okian/pundit/internal/domain/record"
	"github.com/okian/pundit/internal/domain/schema"
	"github.com/okian/pundit/internal/domain/validate"
	"github.com/okian/pundit/pkg/logger"
	"github.com/okian/pundit/pkg/metrics"
)

// Report describes one pipeline run for operational diagnostics. The
// matched/unmatched field sets never affect the parsing outcome.
type Report struct {
	Rows             int
	Records          int
	Skipped          int
	Matched          []schema.Field
	Unmatched        []schema.Field
	HeadlineCoverage int
}

// Ingest runs the full pipeline over raw text: payload check, tokenize,
// resolve schema, normalize, validate. Pure function of (text, table); the
// Report is returned even when validation fails, since the binding
// diagnostics are most useful exactly then.
func Ingest(text, source string, fetchedAt time.Time, table schema.AliasTable) (*repository.Snapshot, Report, error) {
	var rep Report

	if err := validate.Payload(text); err != nil {
		return nil, rep, err
	}

	rows := csvio.Tokenize(text)
	if len(rows) == 0 {
		return nil, rep, validate.ErrEmptyDataset
	}
	rep.Rows = len(rows) - 1

	binding := schema.Resolve(rows[0], table)
	rep.Matched = binding.Matched()
	rep.Unmatched = binding.Unmatched()

	records := make([]record.CreatorRecord, 0, rep.Rows)
	for _, row := range rows[1:] {
		r, ok := record.Normalize(row, binding)
		if !ok {
			rep.Skipped++
			continue
		}
		records = append(records, r)
		if r.HasHeadlineMetric() {
			rep.HeadlineCoverage++
		}
	}
	rep.Records = len(records)

	if err := validate.Dataset(binding, records, rep.Rows); err != nil {
		return nil, rep, err
	}

	return repository.NewSnapshot(records, source, fetchedAt), rep, nil
}

// failureReason maps gate errors to a low-cardinality metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, validate.ErrHTMLPayload):
		return "html_payload"
	case errors.Is(err, validate.ErrSchemaMismatch):
		return "schema_mismatch"
	case errors.Is(err, validate.ErrEmptyDataset):
		return "empty_dataset"
	case errors.Is(err, validate.ErrDataQuality):
		return "data_quality"
	default:
		return "other"
	}
}

// ingest wraps Ingest with logging and metrics for the live refresh path.
func (s *Service) ingest(ctx context.Context, text, source string, fetchedAt time.Time) (*repository.Snapshot, error) {
	start := time.Now()
	snap, rep, err := Ingest(text, source, fetchedAt, s.aliases)

	metrics.UpdateUnresolvedFields(len(rep.Unmatched))
	if len(rep.Unmatched) > 0 {
		s.logger.Warn(ctx, "some canonical fields did not resolve",
			logger.Any("unmatched", rep.Unmatched),
		)
	}

	if err != nil {
		metrics.RecordValidationFailure(failureReason(err))
		metrics.RecordErrorByComponent("pipeline", "validation")
		s.logger.Error(ctx, "snapshot rejected by validation gate",
			logger.String("source", source),
			logger.Int("rows", rep.Rows),
			logger.Int("records", rep.Records),
			logger.Error(err),
		)
		return nil, err
	}

	metrics.RecordRowsParsed(rep.Records)
	for i := 0; i < rep.Skipped; i++ {
		metrics.RecordRowSkipped()
	}
	metrics.RecordSnapshotRebuild(float64(time.Since(start).Milliseconds()))
	return snap, nil
}
