// Package openpred parses the open-predictions sheet: tracked calls whose
// outcome has not yet been evaluated. Keyed by creator identifier, not
// display name.
package openpred

import (
	"strconv"
	"strings"

	"github.com/okian/pundit/internal/domain/csvio"
	"github.com/okian/pundit/internal/domain/record"
	"github.com/okian/pundit/internal/domain/schema"
	"github.com/okian/pundit/internal/domain/validate"
)

// Direction of a call.
type Direction string

// Call directions.
const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
)

// Prediction is one open call.
type Prediction struct {
	CreatorID      string    `json:"creator_id"`
	Ticker         string    `json:"ticker"`
	Company        string    `json:"company"`
	Direction      Direction `json:"direction"`
	HighConfidence bool      `json:"high_confidence"`
	StartPrice     float64   `json:"start_price"`
	PredictionDate string    `json:"prediction_date"`
	EvaluationDate string    `json:"evaluation_date"`
	Evidence       string    `json:"evidence"`
}

// Parse tokenizes the open-predictions CSV and returns the open rows. A row
// is open iff it has a parseable start price and an empty, zero, or
// placeholder end price. The creator-identifier column must bind.
func Parse(text string) ([]Prediction, error) {
	if err := validate.Payload(text); err != nil {
		return nil, err
	}
	rows := csvio.Tokenize(text)
	if len(rows) == 0 {
		return nil, validate.ErrEmptyDataset
	}
	b := schema.Resolve(rows[0], schema.OpenPredictionAliases())
	if !b.Bound(schema.FieldCreator) {
		return nil, validate.ErrSchemaMismatch
	}
	if len(rows) < 2 {
		return nil, validate.ErrEmptyDataset
	}

	var preds []Prediction
	for _, row := range rows[1:] {
		creator := b.Value(row, schema.FieldCreator)
		if creator == "" {
			continue
		}
		start := parsePrice(b.Value(row, schema.FieldStartPrice))
		if !record.Has(start) {
			continue
		}
		if !endPriceOpen(b.Value(row, schema.FieldEndPrice)) {
			continue
		}
		preds = append(preds, Prediction{
			CreatorID:      creator,
			Ticker:         strings.ToUpper(b.Value(row, schema.FieldTicker)),
			Company:        b.Value(row, schema.FieldCompany),
			Direction:      parseDirection(b.Value(row, schema.FieldDirection)),
			HighConfidence: parseConfidence(b.Value(row, schema.FieldConfidence)),
			StartPrice:     start,
			PredictionDate: b.Value(row, schema.FieldPredictionDate),
			EvaluationDate: b.Value(row, schema.FieldEvaluationDate),
			Evidence:       b.Value(row, schema.FieldEvidence),
		})
	}
	return preds, nil
}

// endPriceOpen reports whether an end-price cell marks the prediction as
// still open. An explicit zero price ("$0.00") is a placeholder the sheet
// uses for unevaluated calls, not a real closing price.
func endPriceOpen(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "", "-", "n/a", "na", "tbd", "pending", "open":
		return true
	}
	v := parsePrice(s)
	if !record.Has(v) {
		return true
	}
	return v == 0
}

// parsePrice strips currency formatting and parses. Missing marker on
// failure.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return record.Missing()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return record.Missing()
	}
	return v
}

// parseDirection treats anything containing "bull" as bullish, everything
// else as bearish, matching how the sheet's free-text direction column is
// read.
func parseDirection(s string) Direction {
	if strings.Contains(strings.ToLower(s), "bull") {
		return Bullish
	}
	return Bearish
}

func parseConfidence(s string) bool {
	return strings.Contains(strings.ToLower(s), "high")
}
