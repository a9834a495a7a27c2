// Package schema binds volatile spreadsheet headers to canonical fields.
//
// The sheet editors rename, reorder, and add columns without notice. The
// alias table is versioned with the schema this service understands; the
// live headers are matched against it, never the other way around.
package schema

// Field identifies a canonical column the pipeline knows how to consume.
type Field string

// Canonical fields of the creator-performance sheet.
const (
	FieldCreator           Field = "creator"
	FieldTotalPicks        Field = "totalPicks"
	FieldAccuracy          Field = "accuracy"
	FieldAvgAlpha          Field = "avgAlpha"
	FieldShortTermAlpha    Field = "shortTermAlpha"
	FieldLongTermAlpha     Field = "longTermAlpha"
	FieldBullishAccuracy   Field = "bullishAccuracy"
	FieldBearishAccuracy   Field = "bearishAccuracy"
	FieldBestCall          Field = "bestCall"
	FieldWorstCall         Field = "worstCall"
	FieldBestCallTicker    Field = "bestCallTicker"
	FieldWorstCallTicker   Field = "worstCallTicker"
	FieldAlphaStdDev       Field = "alphaStdDev"
	FieldAlpha2023         Field = "alpha2023"
	FieldAlpha2024         Field = "alpha2024"
	FieldAlpha2025         Field = "alpha2025"
	FieldAlpha2026         Field = "alpha2026"
	FieldPValue            Field = "pValue"
	FieldSigFlag           Field = "sigFlag"
	FieldSampleSizeMet     Field = "sampleSizeMet"
	FieldRecommendedAssets Field = "recommendedAssets"
)

// Canonical fields of the open-predictions sheet. FieldCreator is shared:
// there it carries the creator identifier rather than the display name.
const (
	FieldTicker         Field = "ticker"
	FieldCompany        Field = "company"
	FieldDirection      Field = "direction"
	FieldConfidence     Field = "confidence"
	FieldStartPrice     Field = "startPrice"
	FieldEndPrice       Field = "endPrice"
	FieldPredictionDate Field = "predictionDate"
	FieldEvaluationDate Field = "evaluationDate"
	FieldEvidence       Field = "evidence"
)

// AliasEntry lists the acceptable header spellings for one canonical field,
// in priority order.
type AliasEntry struct {
	Field   Field
	Aliases []string
}

// AliasTable maps canonical fields to alias lists. Entry order is the
// resolution order, which keeps bindings deterministic.
type AliasTable struct {
	Version string
	Entries []AliasEntry
}

// PerformanceAliases returns the alias table for the creator-performance
// sheet. Aliases reflect every header spelling the sheet has shipped with
// so far; the normalized and substring passes absorb the rest of the drift.
func PerformanceAliases() AliasTable {
	return AliasTable{
		Version: "2026-08",
		Entries: []AliasEntry{
			{FieldCreator, []string{"Creator Name", "Channel", "Name", "Creator"}},
			{FieldTotalPicks, []string{"Total Scorable Predictions", "Total Picks", "N"}},
			{FieldAccuracy, []string{"Accuracy", "Win Rate"}},
			{FieldAvgAlpha, []string{"Average Alpha", "Avg Alpha", "Alpha"}},
			{FieldShortTermAlpha, []string{"90 Day Alpha", "Short Term Alpha", "3 Month Alpha"}},
			{FieldLongTermAlpha, []string{"365 Day Alpha", "Long Term Alpha", "1 Year Alpha"}},
			{FieldBullishAccuracy, []string{"Bullish Accuracy", "Bull Accuracy"}},
			{FieldBearishAccuracy, []string{"Bearish Accuracy", "Bear Accuracy"}},
			{FieldBestCall, []string{"Best Call", "Best Call Alpha"}},
			{FieldWorstCall, []string{"Worst Call", "Worst Call Alpha"}},
			{FieldBestCallTicker, []string{"Best Call Ticker", "Best Ticker"}},
			{FieldWorstCallTicker, []string{"Worst Call Ticker", "Worst Ticker"}},
			{FieldAlphaStdDev, []string{"Alpha Std Dev", "Alpha StdDev", "Standard Deviation"}},
			{FieldAlpha2023, []string{"2023 Alpha", "Alpha 2023"}},
			{FieldAlpha2024, []string{"2024 Alpha", "Alpha 2024"}},
			{FieldAlpha2025, []string{"2025 Alpha", "Alpha 2025"}},
			{FieldAlpha2026, []string{"2026 Alpha", "Alpha 2026"}},
			{FieldPValue, []string{"P-Value", "Pval", "P Value"}},
			{FieldSigFlag, []string{"Significance Flag", "Stat Sig", "Significance"}},
			{FieldSampleSizeMet, []string{"Sample Size Met", "Min Sample Met", "Min Sample"}},
			{FieldRecommendedAssets, []string{"Recommended Assets", "Most Recommended Assets", "Tickers"}},
		},
	}
}

// OpenPredictionAliases returns the alias table for the open-predictions
// sheet.
func OpenPredictionAliases() AliasTable {
	return AliasTable{
		Version: "2026-08",
		Entries: []AliasEntry{
			{FieldCreator, []string{"Creator ID", "Creator", "Channel ID"}},
			{FieldTicker, []string{"Ticker", "Symbol"}},
			{FieldCompany, []string{"Target", "Company", "Target Company"}},
			{FieldDirection, []string{"Direction", "Call Type", "Position"}},
			{FieldConfidence, []string{"Confidence", "Conviction"}},
			{FieldStartPrice, []string{"Start Price", "Entry Price", "Price at Prediction"}},
			{FieldEndPrice, []string{"End Price", "Exit Price", "Closing Price"}},
			{FieldPredictionDate, []string{"Prediction Date", "Date", "Call Date"}},
			{FieldEvaluationDate, []string{"Evaluation Date", "Eval Date", "Review Date"}},
			{FieldEvidence, []string{"Evidence", "Quote", "Source Quote"}},
		},
	}
}
