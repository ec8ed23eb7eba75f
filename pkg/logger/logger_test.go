package logger_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rohannaa2m12/hackapp/pkg/logger"
)

func TestLogger(t *testing.T) {
	Convey("Given the global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When fetched before and after Init", func() {
			l := logger.Get()

			Convey("Then a usable logger comes back", func() {
				So(l, ShouldNotBeNil)
				So(func() {
					l.Info(context.Background(), "hello",
						logger.String("k", "v"),
						logger.Int("n", 1),
						logger.Int64("big", 2),
						logger.Error(errors.New("boom")),
					)
				}, ShouldNotPanic)
			})

			Convey("And named loggers derive from it", func() {
				named := logger.Named("sub")
				So(named, ShouldNotBeNil)
				So(func() { named.Warn(context.Background(), "w") }, ShouldNotPanic)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level names", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known names parse case-insensitively", func() {
			for _, lvl := range []string{"debug", "info", "WARN", "warning", "Error", ""} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("And unknown names are rejected", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}
