package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/domain/scoring"
	"github.com/Rohannaa2m12/hackapp/internal/engine"
	"github.com/Rohannaa2m12/hackapp/internal/export"
)

func testClock() scoring.Clock {
	return scoring.ClockFunc(func() time.Time { return time.Unix(1_700_000_000, 0).UTC() })
}

func seededEngine() *engine.Engine {
	eng := engine.New(engine.WithClock(testClock()))
	g, err := eng.RegisterGadget("alice, inc", "a \"quoted\" payload", model.CategoryKeyboard, engine.DefaultMinFeeWei)
	if err != nil {
		panic(err)
	}
	if _, err := eng.RegisterGadget("bob", "b", model.CategorySnippet, engine.DefaultMinFeeWei); err != nil {
		panic(err)
	}
	if _, err := eng.ClaimShortcut(g.ID, "carol"); err != nil {
		panic(err)
	}
	return eng
}

func TestGadgetExportJSON(t *testing.T) {
	Convey("Given a seeded engine", t, func() {
		eng := seededEngine()

		Convey("When exporting gadgets as JSON", func() {
			var buf bytes.Buffer
			err := export.WriteGadgetsJSON(&buf, eng, testClock())
			So(err, ShouldBeNil)

			var doc export.GadgetExport
			So(json.Unmarshal(buf.Bytes(), &doc), ShouldBeNil)

			Convey("Then the envelope carries version, domain and timestamp", func() {
				So(doc.Version, ShouldEqual, export.Version)
				So(doc.Domain, ShouldEqual, engine.DomainSeed)
				So(doc.ExportedAt.Unix(), ShouldEqual, 1_700_000_000)
			})

			Convey("And gadgets appear in id order with claim counts", func() {
				So(len(doc.Gadgets), ShouldEqual, 2)
				So(doc.Gadgets[0].GadgetID, ShouldEqual, 1)
				So(doc.Gadgets[0].ClaimCount, ShouldEqual, 1)
				So(doc.Gadgets[1].GadgetID, ShouldEqual, 2)
				So(doc.Gadgets[1].ClaimCount, ShouldEqual, 0)
			})
		})

		Convey("When exporting shortcuts as JSON", func() {
			var buf bytes.Buffer
			err := export.WriteShortcutsJSON(&buf, eng, 0)
			So(err, ShouldBeNil)

			var doc export.ShortcutExport
			So(json.Unmarshal(buf.Bytes(), &doc), ShouldBeNil)

			Convey("Then the claim is present with its score", func() {
				So(doc.Version, ShouldEqual, export.Version)
				So(len(doc.Shortcuts), ShouldEqual, 1)
				So(doc.Shortcuts[0].Claimer, ShouldEqual, "carol")
				So(doc.Shortcuts[0].ScoreAdded, ShouldBeGreaterThanOrEqualTo, 10)
			})
		})
	})
}

func TestGadgetExportCSV(t *testing.T) {
	Convey("Given a seeded engine with quote-worthy field values", t, func() {
		eng := seededEngine()

		Convey("When exporting gadgets as CSV", func() {
			var buf bytes.Buffer
			So(export.WriteGadgetsCSV(&buf, eng), ShouldBeNil)

			Convey("Then the raw text quotes the comma-bearing owner", func() {
				So(buf.String(), ShouldContainSubstring, `"alice, inc"`)
			})

			Convey("And the document parses back row for row", func() {
				rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
				So(err, ShouldBeNil)
				So(len(rows), ShouldEqual, 3) // header + 2 gadgets
				So(rows[0], ShouldResemble, []string{
					"gadget_id", "owner", "gadget_hash", "category", "registered_at", "active", "claim_count",
				})
				So(rows[1][1], ShouldEqual, "alice, inc")
				So(rows[1][5], ShouldEqual, "true")
				So(rows[1][6], ShouldEqual, "1")
			})
		})
	})
}

func TestImportGadgets(t *testing.T) {
	Convey("Given a gadget export from one engine", t, func() {
		src := seededEngine()
		var buf bytes.Buffer
		So(export.WriteGadgetsJSON(&buf, src, testClock()), ShouldBeNil)

		Convey("When importing it into a fresh engine", func() {
			dst := engine.New(engine.WithClock(testClock()))
			report, err := export.ImportGadgets(dst, &buf)

			Convey("Then every gadget comes back, fee waived", func() {
				So(err, ShouldBeNil)
				So(report.Imported, ShouldEqual, 2)
				So(report.Skipped, ShouldEqual, 0)
				So(dst.GlobalStats().TotalGadgets, ShouldEqual, 2)
				So(dst.GlobalStats().FeesCollectedWei, ShouldEqual, 0)
			})

			Convey("And owners are preserved", func() {
				So(err, ShouldBeNil)
				So(len(dst.GadgetsByOwner("alice, inc")), ShouldEqual, 1)
				So(len(dst.GadgetsByOwner("bob")), ShouldEqual, 1)
			})
		})

		Convey("When the document mixes good and malformed entries", func() {
			doc := `{"gadgets":[
				{"owner":"alice","gadget_hash":"h1","category":"keyboard"},
				{"owner":"bob","gadget_hash":"h2","category":"not-a-category"},
				"just a string",
				{"gadget_hash":"h3","category":"macro"}
			]}`
			dst := engine.New(engine.WithClock(testClock()))
			report, err := export.ImportGadgets(dst, strings.NewReader(doc))

			Convey("Then bad entries are skipped, not fatal", func() {
				So(err, ShouldBeNil)
				So(report.Imported, ShouldEqual, 2)
				So(report.Skipped, ShouldEqual, 2)
			})

			Convey("And the ownerless entry got the fallback owner", func() {
				So(err, ShouldBeNil)
				So(len(dst.GadgetsByOwner("imported")), ShouldEqual, 1)
			})
		})

		Convey("When the document is not JSON at all", func() {
			dst := engine.New(engine.WithClock(testClock()))
			_, err := export.ImportGadgets(dst, strings.NewReader("not json"))

			Convey("Then the import fails as a whole", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
