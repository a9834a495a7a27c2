package rank

import "github.com/okian/pundit/internal/domain/record"

// Default projection sizes, matching the display layer's panels.
const (
	DefaultLeaderboardSize = 4
	DefaultIntervalSize    = 3
	DefaultAssetLimit      = 8
)

// Sizes configures how many entries each board section carries.
type Sizes struct {
	Leaderboard int
	Interval    int
	Assets      int
}

// DefaultSizes returns the standard panel sizes.
func DefaultSizes() Sizes {
	return Sizes{
		Leaderboard: DefaultLeaderboardSize,
		Interval:    DefaultIntervalSize,
		Assets:      DefaultAssetLimit,
	}
}

// MetricBoard is a top/bottom pair for one metric.
type MetricBoard struct {
	Top    []Entry `json:"top"`
	Bottom []Entry `json:"bottom"`
}

// AssetBoard lists the most-recommended tickers.
type AssetBoard struct {
	Items []AssetMention `json:"items"`
}

// Intervals holds alpha boards per holding period: 90 days (short-term),
// 180 days (average), 365 days (long-term).
type Intervals struct {
	D90  MetricBoard `json:"d90"`
	D180 MetricBoard `json:"d180"`
	D365 MetricBoard `json:"d365"`
}

// BoardMeta describes the projection for the display layer.
type BoardMeta struct {
	Label    string `json:"label"`
	Filter   string `json:"filter"`
	Creators int    `json:"creators"`
	Eligible int    `json:"eligible"`
}

// Board is the full leaderboard projection consumed by the presentation
// layer.
type Board struct {
	Meta              BoardMeta   `json:"meta"`
	Alpha             MetricBoard `json:"alpha"`
	Accuracy          MetricBoard `json:"accuracy"`
	StocksRecommended AssetBoard  `json:"stocks_recommended"`
	Intervals         Intervals   `json:"intervals"`
}

// BuildBoard derives the full projection from a record set. The sample-size
// pre-filter applies to ranked sections; asset aggregation intentionally
// counts every creator, eligible or not.
func BuildBoard(records []record.CreatorRecord, sizes Sizes) Board {
	eligible := Eligible(records)

	pair := func(metric Extractor, n int) MetricBoard {
		return MetricBoard{
			Top:    TopN(eligible, metric, n),
			Bottom: BottomN(eligible, metric, n),
		}
	}

	assets := AggregateAssets(records)
	if sizes.Assets < len(assets) {
		assets = assets[:sizes.Assets]
	}

	return Board{
		Meta: BoardMeta{
			Label:    "Creator performance leaderboard",
			Filter:   "sample size met",
			Creators: len(records),
			Eligible: len(eligible),
		},
		Alpha:             pair(ByAvgAlpha, sizes.Leaderboard),
		Accuracy:          pair(ByAccuracy, sizes.Leaderboard),
		StocksRecommended: AssetBoard{Items: assets},
		Intervals: Intervals{
			D90:  pair(ByShortTermAlpha, sizes.Interval),
			D180: pair(ByAvgAlpha, sizes.Interval),
			D365: pair(ByLongTermAlpha, sizes.Interval),
		},
	}
}
