package schema_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/pundit/internal/domain/schema"
)

func TestResolve(t *testing.T) {
	Convey("Given the performance alias table", t, func() {
		table := schema.PerformanceAliases()

		Convey("When the header uses exact alias spellings", func() {
			header := []string{"Creator Name", "Total Picks", "Accuracy", "Average Alpha"}
			b := schema.Resolve(header, table)

			Convey("Then each field binds to its column", func() {
				col, ok := b.Col(schema.FieldCreator)
				So(ok, ShouldBeTrue)
				So(col, ShouldEqual, 0)
				So(b.Bound(schema.FieldTotalPicks), ShouldBeTrue)
				So(b.Bound(schema.FieldAccuracy), ShouldBeTrue)
				So(b.Bound(schema.FieldAvgAlpha), ShouldBeTrue)
			})

			Convey("And absent fields stay unbound", func() {
				So(b.Bound(schema.FieldPValue), ShouldBeFalse)
				So(b.Unmatched(), ShouldContain, schema.FieldPValue)
			})
		})

		Convey("When the header casing differs from the alias", func() {
			b := schema.Resolve([]string{"CREATOR NAME", "accuracy"}, table)

			Convey("Then the exact pass still matches case-insensitively", func() {
				So(b.Bound(schema.FieldCreator), ShouldBeTrue)
				So(b.Bound(schema.FieldAccuracy), ShouldBeTrue)
			})
		})

		Convey("When the header carries punctuation drift", func() {
			b := schema.Resolve([]string{"Creator", "Avg. Alpha", "Alpha (2023)"}, table)

			Convey("Then the normalized pass absorbs it", func() {
				col, ok := b.Col(schema.FieldAvgAlpha)
				So(ok, ShouldBeTrue)
				So(col, ShouldEqual, 1)

				col, ok = b.Col(schema.FieldAlpha2023)
				So(ok, ShouldBeTrue)
				So(col, ShouldEqual, 2)
			})
		})

		Convey("When the header has extra words around a known alias", func() {
			b := schema.Resolve([]string{"Primary Creator Name", "Overall Win Rate"}, table)

			Convey("Then the substring pass catches the drift", func() {
				So(b.Bound(schema.FieldCreator), ShouldBeTrue)
				So(b.Bound(schema.FieldAccuracy), ShouldBeTrue)
			})
		})

		Convey("When a short alias would substring-match everything", func() {
			// "N" for total picks must not bind to arbitrary headers.
			b := schema.Resolve([]string{"Creator", "Notes"}, table)

			Convey("Then aliases under three characters never substring-match", func() {
				So(b.Bound(schema.FieldTotalPicks), ShouldBeFalse)
			})
		})

		Convey("When an earlier pass and a later pass both could match", func() {
			// "Alpha" is an exact alias of avgAlpha, and a substring of the
			// short-term header; the exact hit must win.
			b := schema.Resolve([]string{"90 Day Alpha", "Alpha"}, table)

			col, ok := b.Col(schema.FieldAvgAlpha)
			So(ok, ShouldBeTrue)

			Convey("Then the exact pass takes the exact column", func() {
				So(col, ShouldEqual, 1)
			})

			Convey("And the short-term field binds its own column", func() {
				col, ok := b.Col(schema.FieldShortTermAlpha)
				So(ok, ShouldBeTrue)
				So(col, ShouldEqual, 0)
			})
		})

		Convey("When resolving the same header twice", func() {
			header := []string{"Creator", "Win Rate", "Alpha", "P Value", "Tickers"}
			b1 := schema.Resolve(header, table)
			b2 := schema.Resolve(header, table)

			Convey("Then the binding is deterministic", func() {
				So(b2.Matched(), ShouldResemble, b1.Matched())
				So(b2.Unmatched(), ShouldResemble, b1.Unmatched())
			})
		})
	})
}

func TestBindingValue(t *testing.T) {
	Convey("Given a resolved binding", t, func() {
		table := schema.PerformanceAliases()
		b := schema.Resolve([]string{"Creator", "Accuracy"}, table)

		Convey("When extracting from a full row", func() {
			row := []string{"  alice  ", "61.5%"}

			Convey("Then values come back trimmed", func() {
				So(b.Value(row, schema.FieldCreator), ShouldEqual, "alice")
				So(b.Value(row, schema.FieldAccuracy), ShouldEqual, "61.5%")
			})
		})

		Convey("When the row is shorter than the binding", func() {
			row := []string{"alice"}

			Convey("Then out-of-range columns read as empty", func() {
				So(b.Value(row, schema.FieldAccuracy), ShouldEqual, "")
			})
		})

		Convey("When reading an unbound field", func() {
			Convey("Then the value is empty", func() {
				So(b.Value([]string{"alice", "61.5"}, schema.FieldPValue), ShouldEqual, "")
			})
		})
	})
}
