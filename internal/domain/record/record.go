// Package record defines the typed creator record and the normalization
// rules that produce it from raw sheet rows.
package record

import "math"

// YearAlpha is one year's realized alpha for a creator.
type YearAlpha struct {
	Year  int
	Value float64
}

// CreatorRecord is one creator's normalized performance row. Constructed
// once per fetch and never mutated; the whole set is discarded and rebuilt
// on the next snapshot.
//
// Every numeric field is either a finite value or NaN as the explicit
// missing marker. Downstream code must check Has before using a value.
type CreatorRecord struct {
	Name string

	TotalPicks      float64
	Accuracy        float64
	AvgAlpha        float64
	ShortTermAlpha  float64
	LongTermAlpha   float64
	BullishAccuracy float64
	BearishAccuracy float64
	BestCall        float64
	WorstCall       float64
	AlphaStdDev     float64
	Alpha2023       float64
	Alpha2024       float64
	Alpha2025       float64
	Alpha2026       float64
	PValue          float64

	BestCallTicker    string
	WorstCallTicker   string
	RecommendedAssets string

	SampleSizeMet bool
	Significant   bool
}

// Has reports whether v carries a real value rather than the missing marker.
func Has(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Missing is the explicit marker for an absent numeric value.
func Missing() float64 {
	return math.NaN()
}

// YearlyAlphas returns the per-year alphas in year order, including missing
// ones; callers filter with Has.
func (r CreatorRecord) YearlyAlphas() []YearAlpha {
	return []YearAlpha{
		{2023, r.Alpha2023},
		{2024, r.Alpha2024},
		{2025, r.Alpha2025},
		{2026, r.Alpha2026},
	}
}

// HasHeadlineMetric reports whether the record carries at least one finite
// headline metric. A snapshot where no record does is the canonical symptom
// of a renamed schema binding to the wrong columns.
func (r CreatorRecord) HasHeadlineMetric() bool {
	return Has(r.AvgAlpha) || Has(r.Accuracy) || Has(r.TotalPicks)
}
