package audit_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rohannaa2m12/hackapp/internal/audit"
	"github.com/Rohannaa2m12/hackapp/internal/eventbus"
)

func TestTrail(t *testing.T) {
	Convey("Given an audit trail subscribed as a sink", t, func() {
		trail := audit.NewTrail()
		ctx := context.Background()

		Convey("When it delivers a claim event", func() {
			err := trail.Deliver(ctx, eventbus.Event{
				Kind:       eventbus.KindShortcutClaimed,
				User:       "bob",
				GadgetID:   7,
				ShortcutID: 3,
				At:         time.Unix(1_700_000_000, 0),
			})

			Convey("Then the entry is recorded with a fresh id", func() {
				So(err, ShouldBeNil)
				So(trail.Len(), ShouldEqual, 1)
				entries := trail.Entries()
				So(entries[0].ID, ShouldNotBeEmpty)
				So(entries[0].Kind, ShouldEqual, string(eventbus.KindShortcutClaimed))
				So(entries[0].User, ShouldEqual, "bob")
				So(entries[0].GadgetID, ShouldEqual, 7)
			})

			Convey("And the returned slice is a copy", func() {
				So(err, ShouldBeNil)
				entries := trail.Entries()
				entries[0].User = "mallory"
				So(trail.Entries()[0].User, ShouldEqual, "bob")
			})
		})

		Convey("When more events arrive than the trail retains", func() {
			small := audit.NewTrail(audit.WithMaxEntries(3))
			for i := 0; i < 5; i++ {
				So(small.Deliver(ctx, eventbus.Event{
					Kind: eventbus.KindGadgetRegistered,
					User: fmt.Sprintf("user-%d", i),
				}), ShouldBeNil)
			}

			Convey("Then only the newest entries survive, oldest first", func() {
				So(small.Len(), ShouldEqual, 3)
				entries := small.Entries()
				So(entries[0].User, ShouldEqual, "user-2")
				So(entries[2].User, ShouldEqual, "user-4")
			})
		})

		Convey("Then the sink identifies itself for dispatch logs", func() {
			So(trail.Name(), ShouldEqual, "audit")
		})
	})
}
