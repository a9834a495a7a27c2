package record

// Merge overlays a live record on a fallback one field by field: a live
// numeric wins when finite, otherwise the fallback value is retained; text
// wins when non-empty. Flags come from the live record whenever it carries
// any finite headline metric, since a live row with no numbers at all says
// nothing about eligibility or significance.
func Merge(live, fallback CreatorRecord) CreatorRecord {
	out := fallback
	if live.Name != "" {
		out.Name = live.Name
	}

	pickNum := func(l, f float64) float64 {
		if Has(l) {
			return l
		}
		return f
	}
	pickText := func(l, f string) string {
		if l != "" {
			return l
		}
		return f
	}

	out.TotalPicks = pickNum(live.TotalPicks, fallback.TotalPicks)
	out.Accuracy = pickNum(live.Accuracy, fallback.Accuracy)
	out.AvgAlpha = pickNum(live.AvgAlpha, fallback.AvgAlpha)
	out.ShortTermAlpha = pickNum(live.ShortTermAlpha, fallback.ShortTermAlpha)
	out.LongTermAlpha = pickNum(live.LongTermAlpha, fallback.LongTermAlpha)
	out.BullishAccuracy = pickNum(live.BullishAccuracy, fallback.BullishAccuracy)
	out.BearishAccuracy = pickNum(live.BearishAccuracy, fallback.BearishAccuracy)
	out.BestCall = pickNum(live.BestCall, fallback.BestCall)
	out.WorstCall = pickNum(live.WorstCall, fallback.WorstCall)
	out.AlphaStdDev = pickNum(live.AlphaStdDev, fallback.AlphaStdDev)
	out.Alpha2023 = pickNum(live.Alpha2023, fallback.Alpha2023)
	out.Alpha2024 = pickNum(live.Alpha2024, fallback.Alpha2024)
	out.Alpha2025 = pickNum(live.Alpha2025, fallback.Alpha2025)
	out.Alpha2026 = pickNum(live.Alpha2026, fallback.Alpha2026)
	out.PValue = pickNum(live.PValue, fallback.PValue)

	out.BestCallTicker = pickText(live.BestCallTicker, fallback.BestCallTicker)
	out.WorstCallTicker = pickText(live.WorstCallTicker, fallback.WorstCallTicker)
	out.RecommendedAssets = pickText(live.RecommendedAssets, fallback.RecommendedAssets)

	if live.HasHeadlineMetric() {
		out.SampleSizeMet = live.SampleSizeMet
		out.Significant = live.Significant
	}
	return out
}
