package narrative

import (
	"fmt"
	"math"

	"github.com/okian/pundit/internal/domain/record"
)

// Classification thresholds. Alphas and accuracies are percentage points;
// p-values are fractions of one.
const (
	riskHighExposure     = 300.0
	riskModerateExposure = 100.0

	fitAccuracyStrong = 55.0
	fitHorizonMargin  = 0.0

	volumeVeryActive = 200.0
	volumeActive     = 50.0

	trackRecordStrong = 60.0
	trackRecordMixed  = 50.0

	varianceHigh     = 50.0
	varianceModerate = 20.0

	trendMargin = 5.0

	skewMargin = 10.0

	pValueStrong      = 0.01
	pValueSignificant = 0.05
)

// riskRule and fitRule tables are evaluated in order; first match wins.
type riskRule struct {
	when  func(exposure float64) bool
	level RiskLevel
	text  func(exposure float64) string
}

var riskRules = []riskRule{
	{
		when:  func(e float64) bool { return e >= riskHighExposure },
		level: RiskHigh,
		text: func(e float64) string {
			return fmt.Sprintf("High risk: the spread between this creator's best and worst calls covers %.1f points of alpha.", e)
		},
	},
	{
		when:  func(e float64) bool { return e >= riskModerateExposure },
		level: RiskModerate,
		text: func(e float64) string {
			return fmt.Sprintf("Moderate risk: best-to-worst call spread of %.1f points of alpha.", e)
		},
	},
	{
		when:  func(e float64) bool { return true },
		level: RiskLow,
		text: func(e float64) string {
			return fmt.Sprintf("Low risk: best-to-worst call spread of only %.1f points of alpha.", e)
		},
	},
}

// classifyRisk thresholds |bestCall| + |worstCall|. A missing operand
// contributes nothing; with both missing there is no basis to classify.
func classifyRisk(r record.CreatorRecord) (RiskLevel, string) {
	exposure := 0.0
	any := false
	if record.Has(r.BestCall) {
		exposure += math.Abs(r.BestCall)
		any = true
	}
	if record.Has(r.WorstCall) {
		exposure += math.Abs(r.WorstCall)
		any = true
	}
	if !any {
		return RiskUnknown, "Risk level unknown: no best or worst call data recorded."
	}
	for _, rule := range riskRules {
		if rule.when(exposure) {
			return rule.level, rule.text(exposure)
		}
	}
	return RiskUnknown, ""
}

type fitRule struct {
	when func(record.CreatorRecord) bool
	fit  HorizonFit
	text func(record.CreatorRecord) string
}

var fitRules = []fitRule{
	{
		when: func(r record.CreatorRecord) bool { return !record.Has(r.AvgAlpha) },
		fit:  FitInsufficient,
		text: func(r record.CreatorRecord) string {
			return "Not enough data to assess investor fit."
		},
	},
	{
		when: func(r record.CreatorRecord) bool { return r.AvgAlpha <= 0 },
		fit:  FitNone,
		text: func(r record.CreatorRecord) string {
			return fmt.Sprintf("With an average alpha of %.2f%%, following this creator has not beaten the benchmark.", r.AvgAlpha)
		},
	},
	{
		when: func(r record.CreatorRecord) bool {
			return record.Has(r.ShortTermAlpha) && record.Has(r.LongTermAlpha) &&
				r.ShortTermAlpha > 0 && r.ShortTermAlpha > r.LongTermAlpha+fitHorizonMargin
		},
		fit: FitShortTerm,
		text: func(r record.CreatorRecord) string {
			return fmt.Sprintf("Best suited to short-horizon traders: 90-day alpha of %.2f%% outpaces the one-year figure of %.2f%%.", r.ShortTermAlpha, r.LongTermAlpha)
		},
	},
	{
		when: func(r record.CreatorRecord) bool {
			return record.Has(r.ShortTermAlpha) && record.Has(r.LongTermAlpha) && r.LongTermAlpha > 0
		},
		fit: FitLongTerm,
		text: func(r record.CreatorRecord) string {
			return fmt.Sprintf("Best suited to long-term investors: one-year alpha of %.2f%% holds up over time.", r.LongTermAlpha)
		},
	},
	{
		when: func(r record.CreatorRecord) bool {
			return record.Has(r.Accuracy) && r.Accuracy >= fitAccuracyStrong
		},
		fit: FitBalanced,
		text: func(r record.CreatorRecord) string {
			return fmt.Sprintf("Positive alpha of %.2f%% with %.1f%% accuracy suits investors across horizons.", r.AvgAlpha, r.Accuracy)
		},
	},
	{
		when: func(r record.CreatorRecord) bool { return true },
		fit:  FitCautious,
		text: func(r record.CreatorRecord) string {
			return fmt.Sprintf("Positive alpha of %.2f%%, but a thin supporting record; size positions cautiously.", r.AvgAlpha)
		},
	},
}

func classifyFit(r record.CreatorRecord) (HorizonFit, string) {
	for _, rule := range fitRules {
		if rule.when(r) {
			return rule.fit, rule.text(r)
		}
	}
	return FitInsufficient, ""
}

// styleGenerators each contribute one sentence to the style paragraph.
// Order is fixed; a generator whose inputs are missing opts out.
var styleGenerators = []func(record.CreatorRecord) (string, bool){
	volumeSentence,
	trackRecordSentence,
	varianceSentence,
	trendSentence,
	skewSentence,
	significanceSentence,
}

func volumeSentence(r record.CreatorRecord) (string, bool) {
	if !record.Has(r.TotalPicks) {
		return "", false
	}
	n := int(r.TotalPicks)
	switch {
	case r.TotalPicks >= volumeVeryActive:
		return fmt.Sprintf("A very active caller with %d scorable predictions.", n), true
	case r.TotalPicks >= volumeActive:
		return fmt.Sprintf("An active caller with %d scorable predictions.", n), true
	default:
		return fmt.Sprintf("A selective caller with %d scorable predictions.", n), true
	}
}

func trackRecordSentence(r record.CreatorRecord) (string, bool) {
	if !record.Has(r.Accuracy) {
		return "", false
	}
	switch {
	case r.Accuracy >= trackRecordStrong:
		return fmt.Sprintf("Their track record is strong, landing %.1f%% of directional calls.", r.Accuracy), true
	case r.Accuracy >= trackRecordMixed:
		return fmt.Sprintf("Their track record is mixed, landing %.1f%% of directional calls.", r.Accuracy), true
	default:
		return fmt.Sprintf("Their track record is weak, landing only %.1f%% of directional calls.", r.Accuracy), true
	}
}

func varianceSentence(r record.CreatorRecord) (string, bool) {
	if !record.Has(r.AlphaStdDev) {
		return "", false
	}
	switch {
	case r.AlphaStdDev >= varianceHigh:
		return fmt.Sprintf("Results are highly volatile (alpha standard deviation of %.1f).", r.AlphaStdDev), true
	case r.AlphaStdDev >= varianceModerate:
		return fmt.Sprintf("Results are moderately volatile (alpha standard deviation of %.1f).", r.AlphaStdDev), true
	default:
		return fmt.Sprintf("Results are consistent (alpha standard deviation of %.1f).", r.AlphaStdDev), true
	}
}

// trendSentence needs at least two finite, non-zero yearly alphas; zeros in
// the sheet mean "year not tracked", not "flat year".
func trendSentence(r record.CreatorRecord) (string, bool) {
	var years []record.YearAlpha
	for _, ya := range r.YearlyAlphas() {
		if record.Has(ya.Value) && ya.Value != 0 {
			years = append(years, ya)
		}
	}
	if len(years) < 2 {
		return "", false
	}
	first, last := years[0], years[len(years)-1]
	diff := last.Value - first.Value
	switch {
	case diff > trendMargin:
		return fmt.Sprintf("Year over year they are improving, from %.1f%% alpha in %d to %.1f%% in %d.", first.Value, first.Year, last.Value, last.Year), true
	case diff < -trendMargin:
		return fmt.Sprintf("Year over year they are declining, from %.1f%% alpha in %d to %.1f%% in %d.", first.Value, first.Year, last.Value, last.Year), true
	default:
		return fmt.Sprintf("Year over year they are steady, from %.1f%% alpha in %d to %.1f%% in %d.", first.Value, first.Year, last.Value, last.Year), true
	}
}

func skewSentence(r record.CreatorRecord) (string, bool) {
	if !record.Has(r.BullishAccuracy) || !record.Has(r.BearishAccuracy) {
		return "", false
	}
	diff := r.BullishAccuracy - r.BearishAccuracy
	switch {
	case diff > skewMargin:
		return fmt.Sprintf("They are markedly better on bullish calls (%.1f%% vs %.1f%% bearish).", r.BullishAccuracy, r.BearishAccuracy), true
	case diff < -skewMargin:
		return fmt.Sprintf("They are markedly better on bearish calls (%.1f%% vs %.1f%% bullish).", r.BearishAccuracy, r.BullishAccuracy), true
	default:
		return fmt.Sprintf("Their bullish and bearish calls land at similar rates (%.1f%% vs %.1f%%).", r.BullishAccuracy, r.BearishAccuracy), true
	}
}

func significanceSentence(r record.CreatorRecord) (string, bool) {
	if !record.Has(r.PValue) {
		return "", false
	}
	switch {
	case r.PValue < pValueStrong:
		return fmt.Sprintf("Strong statistical evidence of skill (p = %.4f).", r.PValue), true
	case r.PValue < pValueSignificant:
		return fmt.Sprintf("Statistically significant results (p = %.4f).", r.PValue), true
	default:
		return fmt.Sprintf("Results are not statistically significant (p = %.4f); alpha may be chance.", r.PValue), true
	}
}
