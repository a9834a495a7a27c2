package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/pundit/internal/config"
)

func TestNew(t *testing.T) {
	Convey("Given default configuration", t, func() {
		cfg := config.New()

		Convey("Then serving and pipeline defaults are set", func() {
			So(cfg.Addr, ShouldEqual, ":9090")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.RefreshIntervalMinutes, ShouldEqual, 15)
			So(cfg.LeaderboardSize, ShouldEqual, 4)
			So(cfg.IntervalSize, ShouldEqual, 3)
			So(cfg.AssetLimit, ShouldEqual, 8)
			So(cfg.MaxAssetLimit, ShouldEqual, 50)
			So(cfg.FetchRatePerMinute, ShouldEqual, 6)
			So(cfg.FetchBurst, ShouldEqual, 2)
			So(cfg.BreakerFailureThreshold, ShouldEqual, 3)
			So(cfg.BreakerCooldownSeconds, ShouldEqual, 60)
		})

		Convey("Then endpoints default to unset", func() {
			So(cfg.PrimaryEndpoint, ShouldBeEmpty)
			So(cfg.SecondaryEndpoint, ShouldBeEmpty)
			So(cfg.BaselinePath, ShouldBeEmpty)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given the layered loader", t, func() {
		ctx := context.Background()

		Convey("When nothing overrides the defaults", func() {
			cfg, err := config.Load(ctx)

			Convey("Then defaults load cleanly", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
			})
		})

		Convey("When environment variables are set", func() {
			_ = os.Setenv("PUNDIT_ADDR", ":7070")
			_ = os.Setenv("PUNDIT_PRIMARY_ENDPOINT", "https://example.com/pub?output=csv")
			_ = os.Setenv("PUNDIT_LEADERBOARD_SIZE", "6")
			defer func() {
				_ = os.Unsetenv("PUNDIT_ADDR")
				_ = os.Unsetenv("PUNDIT_PRIMARY_ENDPOINT")
				_ = os.Unsetenv("PUNDIT_LEADERBOARD_SIZE")
			}()

			cfg, err := config.Load(ctx)

			Convey("Then they override the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.PrimaryEndpoint, ShouldEqual, "https://example.com/pub?output=csv")
				So(cfg.LeaderboardSize, ShouldEqual, 6)
			})
		})

		Convey("When a config file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":6060\"\nrefresh_interval_minutes: 30\nbaseline_path: data/baseline.csv\n"
			So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)

			_ = os.Setenv("PUNDIT_CONFIG", path)
			defer func() { _ = os.Unsetenv("PUNDIT_CONFIG") }()

			cfg, err := config.Load(ctx)

			Convey("Then file values override the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.RefreshIntervalMinutes, ShouldEqual, 30)
				So(cfg.BaselinePath, ShouldEqual, "data/baseline.csv")
			})

			Convey("And environment variables override the file", func() {
				_ = os.Setenv("PUNDIT_ADDR", ":5050")
				defer func() { _ = os.Unsetenv("PUNDIT_ADDR") }()

				cfg, err := config.Load(ctx)
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":5050")
				So(cfg.RefreshIntervalMinutes, ShouldEqual, 30)
			})
		})

		Convey("When the config file does not exist", func() {
			_ = os.Setenv("PUNDIT_CONFIG", "missing.yaml")
			defer func() { _ = os.Unsetenv("PUNDIT_CONFIG") }()

			_, err := config.Load(ctx)
			So(err, ShouldNotBeNil)
		})

		Convey("When the address is emptied", func() {
			_ = os.Setenv("PUNDIT_ADDR", "")
			defer func() { _ = os.Unsetenv("PUNDIT_ADDR") }()

			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrEmptyAddr)
		})

		Convey("When the refresh interval is invalid", func() {
			_ = os.Setenv("PUNDIT_REFRESH_INTERVAL_MINUTES", "-1")
			defer func() { _ = os.Unsetenv("PUNDIT_REFRESH_INTERVAL_MINUTES") }()

			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidInterval)
		})
	})
}
