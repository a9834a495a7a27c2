package snapcheck_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/pundit/internal/domain/validate"
	"github.com/okian/pundit/internal/snapcheck"
	"github.com/okian/pundit/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	Convey("Given the snapshot check tool", t, func() {
		ctx := context.Background()

		Convey("When checking a valid performance export", func() {
			path := writeFile(t, "good.csv",
				"Creator,Total Picks,Accuracy,Average Alpha\nalice,120,61.5,5.2\n")

			err := snapcheck.Run(ctx, &snapcheck.Config{Path: path, Verbose: true})

			Convey("Then the check passes", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When checking an HTML payload", func() {
			path := writeFile(t, "bad.html", "<html>sign in</html>")

			err := snapcheck.Run(ctx, &snapcheck.Config{Path: path})

			Convey("Then the gate rejection surfaces as a non-zero exit", func() {
				So(err, ShouldWrap, validate.ErrHTMLPayload)
			})
		})

		Convey("When checking an open-predictions export", func() {
			path := writeFile(t, "preds.csv",
				"Creator ID,Ticker,Direction,Start Price,End Price\nchan-1,NVDA,Bullish,$500.00,\n")

			err := snapcheck.Run(ctx, &snapcheck.Config{Path: path, Predictions: true})

			Convey("Then the check passes", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When neither a file nor a URL is given", func() {
			err := snapcheck.Run(ctx, &snapcheck.Config{Timeout: time.Second})

			Convey("Then the tool refuses to run", func() {
				So(err, ShouldWrap, snapcheck.ErrNoInput)
			})
		})
	})
}
