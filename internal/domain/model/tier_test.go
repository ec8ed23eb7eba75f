package model_test

import (
	"testing"

	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTierForScore(t *testing.T) {
	Convey("Given the tier ladder", t, func() {
		Convey("When the score sits exactly on a floor", func() {
			Convey("Then the floor's tier is awarded", func() {
				So(model.TierForScore(0), ShouldEqual, model.TierBronze)
				So(model.TierForScore(100), ShouldEqual, model.TierSilver)
				So(model.TierForScore(500), ShouldEqual, model.TierGold)
				So(model.TierForScore(2000), ShouldEqual, model.TierPlatinum)
				So(model.TierForScore(10000), ShouldEqual, model.TierLegend)
			})
		})

		Convey("When the score sits just below a floor", func() {
			Convey("Then the lower tier is awarded", func() {
				So(model.TierForScore(99), ShouldEqual, model.TierBronze)
				So(model.TierForScore(499), ShouldEqual, model.TierSilver)
				So(model.TierForScore(1999), ShouldEqual, model.TierGold)
				So(model.TierForScore(9999), ShouldEqual, model.TierPlatinum)
			})
		})

		Convey("When the score is far above the top floor", func() {
			Convey("Then LEGEND still applies", func() {
				So(model.TierForScore(1_000_000), ShouldEqual, model.TierLegend)
			})
		})
	})
}

func TestCategory(t *testing.T) {
	Convey("Given the closed category set", t, func() {
		Convey("Then every listed category validates", func() {
			for _, c := range model.Categories() {
				So(c.Valid(), ShouldBeTrue)
			}
		})

		Convey("Then unknown and empty categories do not", func() {
			So(model.Category("gadgetry").Valid(), ShouldBeFalse)
			So(model.Category("").Valid(), ShouldBeFalse)
			So(model.Category("Keyboard").Valid(), ShouldBeFalse)
		})
	})
}
