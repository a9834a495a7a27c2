package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/pundit/pkg/logger"
)

func TestLogger(t *testing.T) {
	Convey("Given the global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When getting the logger", func() {
			l := logger.Get()

			Convey("Then it is usable for all levels", func() {
				ctx := context.Background()
				So(func() {
					l.Debug(ctx, "debug message", logger.String("k", "v"))
					l.Info(ctx, "info message", logger.Int("n", 42))
					l.Warn(ctx, "warn message", logger.Float64("f", 1.5))
					l.Error(ctx, "error message", logger.Error(errors.New("boom")))
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("fetch")

			Convey("Then it logs without affecting the parent", func() {
				So(named, ShouldNotBeNil)
				So(func() {
					named.Info(context.Background(), "from named logger", logger.Bool("ok", true))
				}, ShouldNotPanic)
			})
		})

		Convey("When setting levels from strings", func() {
			Convey("Then known names parse", func() {
				So(logger.SetLevelString("debug"), ShouldBeNil)
				So(logger.SetLevelString("INFO"), ShouldBeNil)
				So(logger.SetLevelString("warning"), ShouldBeNil)
				So(logger.SetLevelString("error"), ShouldBeNil)
				So(logger.SetLevelString(""), ShouldBeNil)
			})

			Convey("And unknown names are rejected", func() {
				So(logger.SetLevelString("loud"), ShouldNotBeNil)
			})

			logger.SetLevel(slog.LevelInfo)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then each carries its key and value", func() {
			So(logger.String("s", "v"), ShouldResemble, logger.Field{Key: "s", Value: "v"})
			So(logger.Int("i", 7), ShouldResemble, logger.Field{Key: "i", Value: 7})
			So(logger.Float64("f", 2.5), ShouldResemble, logger.Field{Key: "f", Value: 2.5})
			So(logger.Bool("b", true), ShouldResemble, logger.Field{Key: "b", Value: true})
			So(logger.Any("a", []int{1}), ShouldResemble, logger.Field{Key: "a", Value: []int{1}})
		})

		Convey("Then Error uses the conventional key", func() {
			err := errors.New("boom")
			f := logger.Error(err)
			So(f.Key, ShouldEqual, "error")
			So(f.Value, ShouldEqual, err)
		})
	})
}
