package openpred_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/pundit/internal/domain/openpred"
	"github.com/okian/pundit/internal/domain/validate"
)

const header = "Creator ID,Ticker,Target,Direction,Confidence,Start Price,End Price,Prediction Date,Evaluation Date,Evidence\n"

func TestParse(t *testing.T) {
	Convey("Given the open-predictions sheet", t, func() {
		Convey("When a row has a start price and no end price", func() {
			preds, err := openpred.Parse(header +
				"chan-1,aapl,Apple,Bullish,High,\"$1,234.50\",,2026-01-10,2026-07-10,\"price target raised\"\n")

			Convey("Then it parses as one open prediction", func() {
				So(err, ShouldBeNil)
				So(preds, ShouldHaveLength, 1)
				So(preds[0].CreatorID, ShouldEqual, "chan-1")
				So(preds[0].Ticker, ShouldEqual, "AAPL")
				So(preds[0].Direction, ShouldEqual, openpred.Bullish)
				So(preds[0].HighConfidence, ShouldBeTrue)
				So(preds[0].StartPrice, ShouldEqual, 1234.50)
				So(preds[0].Evidence, ShouldEqual, "price target raised")
			})
		})

		Convey("When the end price is the zero placeholder", func() {
			preds, err := openpred.Parse(header +
				"chan-1,MSFT,Microsoft,Bearish,Low,$300.00,$0.00,2026-02-01,2026-08-01,\n")

			Convey("Then the row still counts as open", func() {
				So(err, ShouldBeNil)
				So(preds, ShouldHaveLength, 1)
				So(preds[0].Direction, ShouldEqual, openpred.Bearish)
				So(preds[0].HighConfidence, ShouldBeFalse)
			})
		})

		Convey("When the end price is a textual placeholder", func() {
			for _, placeholder := range []string{"-", "n/a", "TBD", "pending", "open"} {
				preds, err := openpred.Parse(header +
					"chan-1,MSFT,Microsoft,Bull,High,$300.00," + placeholder + ",,,\n")
				So(err, ShouldBeNil)
				So(preds, ShouldHaveLength, 1)
			}
		})

		Convey("When the end price is a real closing price", func() {
			preds, err := openpred.Parse(header +
				"chan-1,MSFT,Microsoft,Bullish,High,$300.00,$12.50,,,\n")

			Convey("Then the prediction is closed and excluded", func() {
				So(err, ShouldBeNil)
				So(preds, ShouldBeEmpty)
			})
		})

		Convey("When the start price is missing or unparseable", func() {
			preds, err := openpred.Parse(header +
				"chan-1,MSFT,Microsoft,Bullish,High,,,,,\n" +
				"chan-2,GOOG,Alphabet,Bullish,High,soon,,,,\n")

			Convey("Then those rows are dropped", func() {
				So(err, ShouldBeNil)
				So(preds, ShouldBeEmpty)
			})
		})

		Convey("When the creator identifier cell is blank", func() {
			preds, err := openpred.Parse(header +
				",MSFT,Microsoft,Bullish,High,$300.00,,,,\n")

			Convey("Then the row is skipped", func() {
				So(err, ShouldBeNil)
				So(preds, ShouldBeEmpty)
			})
		})

		Convey("When the direction text varies", func() {
			preds, err := openpred.Parse(header +
				"chan-1,A,AA,strongly bullish,High,$1.00,,,,\n" +
				"chan-2,B,BB,short,High,$1.00,,,,\n")

			Convey("Then anything containing bull is bullish, the rest bearish", func() {
				So(err, ShouldBeNil)
				So(preds[0].Direction, ShouldEqual, openpred.Bullish)
				So(preds[1].Direction, ShouldEqual, openpred.Bearish)
			})
		})

		Convey("When the payload is an HTML page", func() {
			_, err := openpred.Parse("<html><body>sign in</body></html>")

			Convey("Then the payload gate rejects it", func() {
				So(err, ShouldWrap, validate.ErrHTMLPayload)
			})
		})

		Convey("When the creator column cannot bind", func() {
			_, err := openpred.Parse("Foo,Bar\n1,2\n")

			Convey("Then the schema mismatch is reported", func() {
				So(err, ShouldWrap, validate.ErrSchemaMismatch)
			})
		})

		Convey("When only a header is present", func() {
			_, err := openpred.Parse(header)

			Convey("Then the dataset is empty", func() {
				So(err, ShouldWrap, validate.ErrEmptyDataset)
			})
		})
	})
}
