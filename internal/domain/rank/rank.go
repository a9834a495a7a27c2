// Package rank computes leaderboard projections and asset-mention
// aggregates over an immutable record set. Everything here is a pure
// function of its inputs and may be called once per request without
// re-parsing.
package rank

import (
	"sort"
	"strings"

	"github.com/okian/pundit/internal/domain/record"
)

// Extractor selects the metric a projection ranks by.
type Extractor func(record.CreatorRecord) float64

// Metric extractors used by leaderboard projections.
var (
	ByAvgAlpha       Extractor = func(r record.CreatorRecord) float64 { return r.AvgAlpha }
	ByAccuracy       Extractor = func(r record.CreatorRecord) float64 { return r.Accuracy }
	ByShortTermAlpha Extractor = func(r record.CreatorRecord) float64 { return r.ShortTermAlpha }
	ByLongTermAlpha  Extractor = func(r record.CreatorRecord) float64 { return r.LongTermAlpha }
)

// Entry is one leaderboard row. Derived, never stored; Rank is 1-based and
// re-derived from a fresh sort each call.
type Entry struct {
	Rank        int      `json:"rank"`
	Name        string   `json:"name"`
	Value       float64  `json:"value"`
	TotalPicks  *float64 `json:"total_picks,omitempty"`
	PValue      *float64 `json:"p_value,omitempty"`
	Significant bool     `json:"significant"`
}

// AssetMention counts how many creators recommend a ticker.
type AssetMention struct {
	Ticker   string `json:"ticker"`
	Mentions int    `json:"mentions"`
}

// Eligible filters to records allowed on comparative leaderboards. Runs
// upstream of TopN/BottomN so the sample-size policy lives in one place.
func Eligible(records []record.CreatorRecord) []record.CreatorRecord {
	out := make([]record.CreatorRecord, 0, len(records))
	for _, r := range records {
		if r.SampleSizeMet {
			out = append(out, r)
		}
	}
	return out
}

// TopN returns the n highest entries by metric. Records without a finite
// value for the metric are excluded; the sort is stable so ties keep input
// order.
func TopN(records []record.CreatorRecord, metric Extractor, n int) []Entry {
	return project(records, metric, n, true)
}

// BottomN returns the n lowest entries by metric, with the same filtering
// and tie semantics as TopN.
func BottomN(records []record.CreatorRecord, metric Extractor, n int) []Entry {
	return project(records, metric, n, false)
}

func project(records []record.CreatorRecord, metric Extractor, n int, descending bool) []Entry {
	if n <= 0 {
		return nil
	}

	ranked := make([]record.CreatorRecord, 0, len(records))
	for _, r := range records {
		if record.Has(metric(r)) {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			return metric(ranked[i]) > metric(ranked[j])
		}
		return metric(ranked[i]) < metric(ranked[j])
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		r := ranked[i]
		entries[i] = Entry{
			Rank:        i + 1,
			Name:        r.Name,
			Value:       metric(r),
			TotalPicks:  optional(r.TotalPicks),
			PValue:      optional(r.PValue),
			Significant: r.Significant,
		}
	}
	return entries
}

// AggregateAssets splits each record's free-text ticker list on commas,
// trims and upper-cases tokens, drops empties, and counts mentions across
// all creators. Sorted descending by count; ties keep first-encounter order.
func AggregateAssets(records []record.CreatorRecord) []AssetMention {
	counts := make(map[string]int)
	var order []string

	for _, r := range records {
		for _, tok := range strings.Split(r.RecommendedAssets, ",") {
			ticker := strings.ToUpper(strings.TrimSpace(tok))
			if ticker == "" {
				continue
			}
			if _, seen := counts[ticker]; !seen {
				order = append(order, ticker)
			}
			counts[ticker]++
		}
	}

	mentions := make([]AssetMention, 0, len(order))
	for _, ticker := range order {
		mentions = append(mentions, AssetMention{Ticker: ticker, Mentions: counts[ticker]})
	}
	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].Mentions > mentions[j].Mentions
	})
	return mentions
}

func optional(v float64) *float64 {
	if !record.Has(v) {
		return nil
	}
	return &v
}
