package metrics_test

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rohannaa2m12/hackapp/pkg/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := metrics.NewManager(
			metrics.WithRegistry(prometheus.NewRegistry()),
			metrics.WithNamespace("test"),
			metrics.WithSubsystem("sub"),
		)

		Convey("Then construction registers everything without collision", func() {
			So(m, ShouldNotBeNil)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the package-level helpers", t, func() {
		Convey("Then recording never panics", func() {
			So(func() {
				metrics.RecordRegistration()
				metrics.RecordClaim()
				metrics.RecordImport()
				metrics.RecordFees(1000)
				metrics.RecordEngineError("fee_required")
				metrics.UpdateBoardUsers(3)
				metrics.UpdateGadgetsTracked(7)
				metrics.RecordHTTPRequest("register", "201")
				metrics.RecordHTTPDuration("register", 0.01)
				metrics.UpdateBusDepth(2)
				metrics.RecordBusPublished()
				metrics.RecordBusDropped()
				metrics.RecordWebhookDelivered()
				metrics.RecordWebhookRetry()
				metrics.RecordWebhookFailure()
				metrics.RecordRateLimited()
				metrics.RecordStatsCacheHit()
				metrics.RecordStatsCacheMiss()
			}, ShouldNotPanic)
		})

		Convey("And the scrape handler serves the registry metrics", func() {
			metrics.RecordRegistration()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/metrics", nil)
			metrics.Handler().ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, 200)
			So(rec.Body.String(), ShouldContainSubstring, "hackapp_registry_registrations_total")
		})
	})
}
