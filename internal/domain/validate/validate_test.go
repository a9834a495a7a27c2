package validate_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/pundit/internal/domain/record"
	"github.com/okian/pundit/internal/domain/schema"
	"github.com/okian/pundit/internal/domain/validate"
)

func TestPayload(t *testing.T) {
	Convey("Given the payload gate", t, func() {
		Convey("When the payload starts with an HTML tag", func() {
			err := validate.Payload("<!DOCTYPE html><html>...")

			Convey("Then it is rejected as HTML", func() {
				So(err, ShouldWrap, validate.ErrHTMLPayload)
			})
		})

		Convey("When leading whitespace precedes the tag", func() {
			err := validate.Payload("  \r\n\t<html>")

			Convey("Then it is still rejected", func() {
				So(err, ShouldWrap, validate.ErrHTMLPayload)
			})
		})

		Convey("When the payload is CSV text", func() {
			Convey("Then it passes", func() {
				So(validate.Payload("Creator,Accuracy\nalice,61.5\n"), ShouldBeNil)
			})
		})

		Convey("When a '<' appears past the first non-whitespace byte", func() {
			Convey("Then it passes; only the leading byte matters", func() {
				So(validate.Payload("a<b,c\n"), ShouldBeNil)
			})
		})

		Convey("When the payload is empty or whitespace", func() {
			Convey("Then it passes and later gates handle emptiness", func() {
				So(validate.Payload(""), ShouldBeNil)
				So(validate.Payload("  \n"), ShouldBeNil)
			})
		})
	})
}

func TestDataset(t *testing.T) {
	table := schema.PerformanceAliases()

	Convey("Given the dataset gate", t, func() {
		bound := schema.Resolve([]string{"Creator", "Average Alpha"}, table)
		unbound := schema.Resolve([]string{"Foo", "Bar"}, table)

		good := record.CreatorRecord{Name: "alice", AvgAlpha: 5.0,
			Accuracy: record.Missing(), TotalPicks: record.Missing()}
		vacuous := record.CreatorRecord{Name: "bob",
			AvgAlpha: record.Missing(), Accuracy: record.Missing(), TotalPicks: record.Missing()}

		Convey("When the creator column never bound", func() {
			err := validate.Dataset(unbound, nil, 5)

			Convey("Then the schema mismatch fires first", func() {
				So(err, ShouldWrap, validate.ErrSchemaMismatch)
			})
		})

		Convey("When there are no data rows", func() {
			err := validate.Dataset(bound, nil, 0)

			Convey("Then the dataset is empty", func() {
				So(err, ShouldWrap, validate.ErrEmptyDataset)
			})
		})

		Convey("When every record lacks every headline metric", func() {
			err := validate.Dataset(bound, []record.CreatorRecord{vacuous, vacuous}, 2)

			Convey("Then the quality gate rejects the parse", func() {
				So(err, ShouldWrap, validate.ErrDataQuality)
			})
		})

		Convey("When at least one record has a headline metric", func() {
			err := validate.Dataset(bound, []record.CreatorRecord{vacuous, good}, 2)

			Convey("Then a sparse dataset passes", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When rows existed but every one was skipped", func() {
			err := validate.Dataset(bound, nil, 3)

			Convey("Then the parse passes with zero records", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}
