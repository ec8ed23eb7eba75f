package ratelimit_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rohannaa2m12/hackapp/pkg/ratelimit"
)

func TestKeyedLimiter(t *testing.T) {
	Convey("Given a limiter with a slow refill and burst of two", t, func() {
		l := ratelimit.New(ratelimit.WithRate(0.001), ratelimit.WithBurst(2))

		Convey("When one key spends its burst", func() {
			So(l.Allow("alice"), ShouldBeTrue)
			So(l.Allow("alice"), ShouldBeTrue)

			Convey("Then the next request is rejected", func() {
				So(l.Allow("alice"), ShouldBeFalse)
			})

			Convey("But other keys have their own bucket", func() {
				So(l.Allow("bob"), ShouldBeTrue)
			})
		})

		Convey("When several keys are used", func() {
			for _, key := range []string{"a", "b", "c"} {
				So(l.Allow(key), ShouldBeTrue)
			}

			Convey("Then each key is tracked once", func() {
				So(l.Size(), ShouldEqual, 3)
				So(l.Allow("a"), ShouldBeTrue)
				So(l.Size(), ShouldEqual, 3)
			})
		})
	})
}
