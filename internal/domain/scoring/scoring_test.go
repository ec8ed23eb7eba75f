package scoring_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rohannaa2m12/hackapp/internal/domain/scoring"
)

func fixedClock(epoch int64) scoring.Clock {
	return scoring.ClockFunc(func() time.Time { return time.Unix(epoch, 0) })
}

func TestClaimScorer_Score(t *testing.T) {
	Convey("Given a scorer with a pinned clock", t, func() {
		Convey("When the epoch second is a multiple of the variance modulus", func() {
			scorer := scoring.NewClaimScorer(scoring.WithClock(fixedClock(1_700_000_000)))

			Convey("Then the score is exactly the base", func() {
				So(scorer.Score(), ShouldEqual, 10)
			})
		})

		Convey("When the epoch second leaves a remainder", func() {
			Convey("Then the remainder is added to the base", func() {
				for offset := int64(0); offset < 5; offset++ {
					scorer := scoring.NewClaimScorer(scoring.WithClock(fixedClock(1_700_000_000 + offset)))
					So(scorer.Score(), ShouldEqual, 10+offset)
				}
			})
		})

		Convey("When scoring repeatedly at the same instant", func() {
			scorer := scoring.NewClaimScorer(scoring.WithClock(fixedClock(1_700_000_003)))

			Convey("Then the score is stable", func() {
				So(scorer.Score(), ShouldEqual, scorer.Score())
			})
		})
	})

	Convey("Given a scorer with custom base and modulus", t, func() {
		scorer := scoring.NewClaimScorer(
			scoring.WithBase(100),
			scoring.WithVarianceMod(7),
			scoring.WithClock(fixedClock(1_700_000_010)),
		)

		Convey("Then the score uses both", func() {
			So(scorer.Score(), ShouldEqual, 100+1_700_000_010%7)
		})
	})

	Convey("Given the system clock", t, func() {
		scorer := scoring.NewClaimScorer()

		Convey("Then the score stays within the documented range", func() {
			s := scorer.Score()
			So(s, ShouldBeGreaterThanOrEqualTo, 10)
			So(s, ShouldBeLessThan, 15)
		})
	})
}
