package rank_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/pundit/internal/domain/rank"
	"github.com/okian/pundit/internal/domain/record"
)

func creator(name string, avgAlpha float64, eligible bool) record.CreatorRecord {
	return record.CreatorRecord{
		Name:           name,
		AvgAlpha:       avgAlpha,
		Accuracy:       record.Missing(),
		TotalPicks:     record.Missing(),
		ShortTermAlpha: record.Missing(),
		LongTermAlpha:  record.Missing(),
		PValue:         record.Missing(),
		SampleSizeMet:  eligible,
	}
}

func TestTopBottomN(t *testing.T) {
	Convey("Given a set of creators with average alphas", t, func() {
		records := []record.CreatorRecord{
			creator("A", 5.0, true),
			creator("B", 3.0, true),
			creator("C", 3.0, true),
			creator("D", -2.0, true),
			creator("E", record.Missing(), true),
		}

		Convey("When taking the top three", func() {
			top := rank.TopN(records, rank.ByAvgAlpha, 3)

			Convey("Then ranks are 1-based and ordered by value", func() {
				So(top, ShouldHaveLength, 3)
				So(top[0].Name, ShouldEqual, "A")
				So(top[0].Rank, ShouldEqual, 1)
				So(top[2].Rank, ShouldEqual, 3)
			})

			Convey("And ties keep their input order", func() {
				So(top[1].Name, ShouldEqual, "B")
				So(top[2].Name, ShouldEqual, "C")
			})
		})

		Convey("When taking the bottom two", func() {
			bottom := rank.BottomN(records, rank.ByAvgAlpha, 2)

			Convey("Then the lowest values come first, ties in input order", func() {
				So(bottom, ShouldHaveLength, 2)
				So(bottom[0].Name, ShouldEqual, "D")
				So(bottom[1].Name, ShouldEqual, "B")
			})
		})

		Convey("When a record is missing the metric", func() {
			top := rank.TopN(records, rank.ByAvgAlpha, 10)

			Convey("Then it is excluded instead of sorted as zero", func() {
				So(top, ShouldHaveLength, 4)
				for _, e := range top {
					So(e.Name, ShouldNotEqual, "E")
				}
			})
		})

		Convey("When n exceeds the eligible count", func() {
			Convey("Then all available entries are returned", func() {
				So(rank.TopN(records, rank.ByAvgAlpha, 100), ShouldHaveLength, 4)
			})
		})

		Convey("When n is zero or negative", func() {
			Convey("Then no entries are returned", func() {
				So(rank.TopN(records, rank.ByAvgAlpha, 0), ShouldBeNil)
				So(rank.BottomN(records, rank.ByAvgAlpha, -1), ShouldBeNil)
			})
		})

		Convey("When entries carry optional fields", func() {
			r := creator("F", 1.0, true)
			r.TotalPicks = 42
			top := rank.TopN([]record.CreatorRecord{r}, rank.ByAvgAlpha, 1)

			Convey("Then finite optionals are pointers and missing ones are nil", func() {
				So(top[0].TotalPicks, ShouldNotBeNil)
				So(*top[0].TotalPicks, ShouldEqual, 42)
				So(top[0].PValue, ShouldBeNil)
			})
		})
	})
}

func TestEligible(t *testing.T) {
	Convey("Given creators with mixed sample-size flags", t, func() {
		records := []record.CreatorRecord{
			creator("A", 5.0, true),
			creator("B", 9.0, false),
			creator("C", 1.0, true),
		}

		Convey("When filtering for eligibility", func() {
			eligible := rank.Eligible(records)

			Convey("Then only sample-size-met creators remain, in order", func() {
				So(eligible, ShouldHaveLength, 2)
				So(eligible[0].Name, ShouldEqual, "A")
				So(eligible[1].Name, ShouldEqual, "C")
			})
		})
	})
}

func TestAggregateAssets(t *testing.T) {
	Convey("Given creators recommending overlapping tickers", t, func() {
		records := []record.CreatorRecord{
			{Name: "A", RecommendedAssets: "AAPL, msft"},
			{Name: "B", RecommendedAssets: "aapl , GOOG,"},
			{Name: "C", RecommendedAssets: ""},
		}

		Convey("When aggregating", func() {
			mentions := rank.AggregateAssets(records)

			Convey("Then tickers are trimmed, upper-cased, and counted", func() {
				So(mentions, ShouldHaveLength, 3)
				So(mentions[0], ShouldResemble, rank.AssetMention{Ticker: "AAPL", Mentions: 2})
			})

			Convey("And ties keep first-encounter order", func() {
				So(mentions[1].Ticker, ShouldEqual, "MSFT")
				So(mentions[2].Ticker, ShouldEqual, "GOOG")
			})

			Convey("And empty tokens are dropped", func() {
				for _, m := range mentions {
					So(m.Ticker, ShouldNotBeEmpty)
				}
			})
		})
	})
}

func TestBuildBoard(t *testing.T) {
	Convey("Given a full record set", t, func() {
		ineligible := creator("X", 99.0, false)
		ineligible.RecommendedAssets = "TSLA"
		records := []record.CreatorRecord{
			creator("A", 5.0, true),
			creator("B", 3.0, true),
			creator("C", -1.0, true),
			ineligible,
		}
		records[0].ShortTermAlpha = 2.0
		records[0].LongTermAlpha = 7.0

		Convey("When building the board with default sizes", func() {
			board := rank.BuildBoard(records, rank.DefaultSizes())

			Convey("Then meta counts both populations", func() {
				So(board.Meta.Creators, ShouldEqual, 4)
				So(board.Meta.Eligible, ShouldEqual, 3)
			})

			Convey("And ranked sections exclude ineligible creators", func() {
				for _, e := range board.Alpha.Top {
					So(e.Name, ShouldNotEqual, "X")
				}
			})

			Convey("And asset aggregation counts everyone", func() {
				So(board.StocksRecommended.Items, ShouldHaveLength, 1)
				So(board.StocksRecommended.Items[0].Ticker, ShouldEqual, "TSLA")
			})

			Convey("And interval boards rank by their own metric", func() {
				So(board.Intervals.D90.Top, ShouldHaveLength, 1)
				So(board.Intervals.D90.Top[0].Value, ShouldEqual, 2.0)
				So(board.Intervals.D365.Top[0].Value, ShouldEqual, 7.0)
			})
		})

		Convey("When the asset limit is smaller than the aggregate", func() {
			sizes := rank.DefaultSizes()
			sizes.Assets = 0
			board := rank.BuildBoard(records, sizes)

			Convey("Then the asset list is truncated", func() {
				So(board.StocksRecommended.Items, ShouldBeEmpty)
			})
		})
	})
}
