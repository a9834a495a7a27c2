// Package validate is the gate between parsing and serving: it rejects
// parse results that are structurally empty, schema-less, or numerically
// vacuous, so an upstream schema change fails loudly instead of silently
// serving nonsense.
package validate

import (
	"fmt"

	"github.com/okian/pundit/internal/domain/record"
	"github.com/okian/pundit/internal/domain/schema"
)

// Payload rejects raw fetched text whose first non-whitespace byte is '<'.
// Runs before tokenizing; an HTML login page tokenizes into garbage that
// would otherwise surface as a confusing schema error.
func Payload(text string) error {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case '<':
			return ErrHTMLPayload
		default:
			return nil
		}
	}
	return nil
}

// Dataset validates a parse result. dataRows counts rows after the header,
// including blank ones that the normalizer skipped. A sparse dataset where
// some creators lack some fields passes; a dataset where every creator
// lacks every headline metric does not.
func Dataset(b schema.Binding, records []record.CreatorRecord, dataRows int) error {
	if !b.Bound(schema.FieldCreator) {
		return ErrSchemaMismatch
	}
	if dataRows < 1 {
		return ErrEmptyDataset
	}
	if len(records) >= 1 {
		for _, r := range records {
			if r.HasHeadlineMetric() {
				return nil
			}
		}
		return fmt.Errorf("%d records parsed: %w", len(records), ErrDataQuality)
	}
	return nil
}
