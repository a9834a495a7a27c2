package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/pundit/internal/adapters/fetch"
	"github.com/okian/pundit/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func csvServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
}

func failingServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
}

func TestFetch(t *testing.T) {
	Convey("Given a fetch client", t, func() {
		ctx := context.Background()

		Convey("When the primary endpoint answers", func() {
			primary := csvServer("Creator,Alpha\nalice,5\n")
			defer primary.Close()
			secondary := csvServer("secondary data")
			defer secondary.Close()

			c := fetch.New(primary.URL, secondary.URL, fetch.WithRateLimit(6000, 10))
			res, err := c.Fetch(ctx)

			Convey("Then its payload is returned as the primary source", func() {
				So(err, ShouldBeNil)
				So(res.Source, ShouldEqual, fetch.SourcePrimary)
				So(res.Text, ShouldStartWith, "Creator,Alpha")
				So(res.FetchedAt, ShouldHappenWithin, time.Minute, time.Now())
			})
		})

		Convey("When the primary fails and the secondary answers", func() {
			primary := failingServer()
			defer primary.Close()
			secondary := csvServer("fallback data")
			defer secondary.Close()

			c := fetch.New(primary.URL, secondary.URL, fetch.WithRateLimit(6000, 10))
			res, err := c.Fetch(ctx)

			Convey("Then the fallback payload is returned, labeled secondary", func() {
				So(err, ShouldBeNil)
				So(res.Source, ShouldEqual, fetch.SourceSecondary)
				So(res.Text, ShouldEqual, "fallback data")
			})
		})

		Convey("When both endpoints fail", func() {
			primary := failingServer()
			defer primary.Close()
			secondary := failingServer()
			defer secondary.Close()

			c := fetch.New(primary.URL, secondary.URL, fetch.WithRateLimit(6000, 10))
			_, err := c.Fetch(ctx)

			Convey("Then the error carries both causes", func() {
				So(err, ShouldNotBeNil)
				var ie *fetch.IngestError
				So(err, ShouldHaveSameTypeAs, ie)
				So(err.Error(), ShouldContainSubstring, "primary")
				So(err.Error(), ShouldContainSubstring, "secondary")
			})
		})

		Convey("When only the primary is configured and it fails", func() {
			primary := failingServer()
			defer primary.Close()

			c := fetch.New(primary.URL, "", fetch.WithRateLimit(6000, 10))
			_, err := c.Fetch(ctx)

			Convey("Then no fallback is attempted and the failure surfaces", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When no endpoints are configured", func() {
			c := fetch.New("", "")
			_, err := c.Fetch(ctx)

			Convey("Then the client refuses up front", func() {
				So(err, ShouldWrap, fetch.ErrNoEndpoints)
			})
		})

		Convey("When the context is already cancelled", func() {
			primary := csvServer("data")
			defer primary.Close()

			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			c := fetch.New(primary.URL, "", fetch.WithRateLimit(6000, 10))
			_, err := c.Fetch(cancelled)

			Convey("Then the rate limiter surfaces the cancellation", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the primary keeps failing past the breaker threshold", func() {
			primary := failingServer()
			defer primary.Close()
			secondary := csvServer("fallback data")
			defer secondary.Close()

			c := fetch.New(primary.URL, secondary.URL,
				fetch.WithRateLimit(60000, 100),
				fetch.WithBreakerSettings(2, time.Minute),
			)

			for i := 0; i < 3; i++ {
				_, _ = c.Fetch(ctx)
			}
			res, err := c.Fetch(ctx)

			Convey("Then the breaker opens and the secondary still serves", func() {
				So(err, ShouldBeNil)
				So(res.Source, ShouldEqual, fetch.SourceSecondary)
			})
		})
	})
}
