package record

import (
	"strconv"
	"strings"

	"github.com/okian/pundit/internal/domain/schema"
)

// Normalize converts one raw row into a typed CreatorRecord using the
// resolved binding. The second return is false for rows with a blank name,
// which are expected spreadsheet artifacts and skipped silently.
func Normalize(row []string, b schema.Binding) (CreatorRecord, bool) {
	name := b.Value(row, schema.FieldCreator)
	if name == "" {
		return CreatorRecord{}, false
	}

	num := func(f schema.Field) float64 {
		return parseNumber(b.Value(row, f))
	}

	return CreatorRecord{
		Name: name,

		TotalPicks:      num(schema.FieldTotalPicks),
		Accuracy:        num(schema.FieldAccuracy),
		AvgAlpha:        num(schema.FieldAvgAlpha),
		ShortTermAlpha:  num(schema.FieldShortTermAlpha),
		LongTermAlpha:   num(schema.FieldLongTermAlpha),
		BullishAccuracy: num(schema.FieldBullishAccuracy),
		BearishAccuracy: num(schema.FieldBearishAccuracy),
		BestCall:        num(schema.FieldBestCall),
		WorstCall:       num(schema.FieldWorstCall),
		AlphaStdDev:     num(schema.FieldAlphaStdDev),
		Alpha2023:       num(schema.FieldAlpha2023),
		Alpha2024:       num(schema.FieldAlpha2024),
		Alpha2025:       num(schema.FieldAlpha2025),
		Alpha2026:       num(schema.FieldAlpha2026),
		PValue:          parsePValue(b.Value(row, schema.FieldPValue)),

		BestCallTicker:    b.Value(row, schema.FieldBestCallTicker),
		WorstCallTicker:   b.Value(row, schema.FieldWorstCallTicker),
		RecommendedAssets: b.Value(row, schema.FieldRecommendedAssets),

		SampleSizeMet: parseSampleSizeMet(b.Value(row, schema.FieldSampleSizeMet), b.Bound(schema.FieldSampleSizeMet)),
		Significant:   parseSignificance(b.Value(row, schema.FieldSigFlag)),
	}, true
}

// parseNumber parses a plain or percentage-suffixed numeric cell. Empty or
// non-numeric text yields the missing marker, never zero.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing()
	}
	return v
}

// parsePValue handles the sheet's dual p-value encoding: "3.18%" means a
// percentage of one (0.0318), while "0.0064" is already fractional. Both
// conventions appear across the sheet's history and must resolve to the
// same scale. Values outside [0, 1] after normalization are treated as
// missing rather than propagated.
func parsePValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing()
	}
	divisor := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		divisor = 100.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing()
	}
	v /= divisor
	if v < 0 || v > 1 {
		return Missing()
	}
	return v
}

// parseSignificance is true only when the cell contains "significant" but
// not "not significant"; the negative phrase must be checked explicitly
// since it contains the positive one.
func parseSignificance(s string) bool {
	ls := strings.ToLower(strings.TrimSpace(s))
	return strings.Contains(ls, "significant") && !strings.Contains(ls, "not significant")
}

// parseSampleSizeMet defaults to true when the column is unbound or the
// cell is empty: the absence of the column must not silently exclude every
// creator from rankings. Only a cell that starts with a negative-looking
// token opts a creator out.
func parseSampleSizeMet(s string, bound bool) bool {
	if !bound {
		return true
	}
	ls := strings.ToLower(strings.TrimSpace(s))
	if ls == "" {
		return true
	}
	for _, neg := range []string{"no", "false", "0"} {
		if strings.HasPrefix(ls, neg) {
			return false
		}
	}
	return true
}
