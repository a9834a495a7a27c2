// Package narrative turns a creator's numeric metrics into qualitative,
// human-readable statements. Pure and stateless: identical inputs always
// produce byte-identical text. Classification runs over ordered
// (predicate, template) rule tables so each threshold is independently
// testable.
package narrative

import (
	"strings"

	"github.com/okian/pundit/internal/domain/record"
)

// RiskLevel categorizes a creator's call-outcome spread.
type RiskLevel string

// Risk categories.
const (
	RiskHigh     RiskLevel = "high"
	RiskModerate RiskLevel = "moderate"
	RiskLow      RiskLevel = "low"
	RiskUnknown  RiskLevel = "unknown"
)

// HorizonFit categorizes which investor time horizon a creator suits.
type HorizonFit string

// Horizon-fit categories.
const (
	FitShortTerm    HorizonFit = "short_term"
	FitLongTerm     HorizonFit = "long_term"
	FitBalanced     HorizonFit = "balanced"
	FitCautious     HorizonFit = "cautious"
	FitNone         HorizonFit = "none"
	FitInsufficient HorizonFit = "insufficient"
)

// SignificanceTier categorizes the statistical confidence in a creator's
// alpha.
type SignificanceTier string

// Significance tiers.
const (
	SigStrong       SignificanceTier = "strong"
	SigSignificant  SignificanceTier = "significant"
	SigInconclusive SignificanceTier = "inconclusive"
	SigUnknown      SignificanceTier = "unknown"
)

// Summary is the synthesized qualitative view of one creator.
type Summary struct {
	Risk         RiskLevel        `json:"risk"`
	RiskText     string           `json:"risk_text"`
	Fit          HorizonFit       `json:"fit"`
	FitText      string           `json:"fit_text"`
	Significance SignificanceTier `json:"significance"`
	Style        string           `json:"style"`
}

// Synthesize classifies r against the fixed threshold ladders and
// assembles the multi-sentence style paragraph. Generators with missing
// inputs are skipped; the output degrades to fewer sentences rather than
// failing.
func Synthesize(r record.CreatorRecord) Summary {
	risk, riskText := classifyRisk(r)
	fit, fitText := classifyFit(r)
	return Summary{
		Risk:         risk,
		RiskText:     riskText,
		Fit:          fit,
		FitText:      fitText,
		Significance: significanceTier(r.PValue),
		Style:        styleParagraph(r),
	}
}

func styleParagraph(r record.CreatorRecord) string {
	var sentences []string
	for _, gen := range styleGenerators {
		if s, ok := gen(r); ok {
			sentences = append(sentences, s)
		}
	}
	return strings.Join(sentences, " ")
}

func significanceTier(pValue float64) SignificanceTier {
	switch {
	case !record.Has(pValue):
		return SigUnknown
	case pValue < pValueStrong:
		return SigStrong
	case pValue < pValueSignificant:
		return SigSignificant
	default:
		return SigInconclusive
	}
}
