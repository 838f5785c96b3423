package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsCreation(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating with defaults", func() {
			m := New()

			Convey("Then the default namespace is used", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "hbnb")
				So(m.Registry(), ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			m := New(WithNamespace("custom"), WithBuckets([]float64{0.1, 1}))

			Convey("Then the options are applied", func() {
				So(m.namespace, ShouldEqual, "custom")
				So(m.buckets, ShouldResemble, []float64{0.1, 1})
			})
		})

		Convey("When creating two instances", func() {
			Convey("Then their registries do not collide", func() {
				So(func() {
					New()
					New()
				}, ShouldNotPanic)
			})
		})
	})
}

func TestStorageRecording(t *testing.T) {
	Convey("Given fresh metrics", t, func() {
		m := New()

		Convey("When storage calls succeed and fail", func() {
			m.ObserveStorage("file", "load", time.Millisecond, nil)
			m.ObserveStorage("file", "load", time.Millisecond, nil)
			m.ObserveStorage("file", "apply", time.Millisecond, errors.New("boom"))

			Convey("Then they are counted by outcome", func() {
				So(testutil.ToFloat64(m.storageOps.WithLabelValues("file", "load", "ok")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.storageOps.WithLabelValues("file", "apply", "error")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.storageOps.WithLabelValues("file", "apply", "ok")), ShouldEqual, 0)
			})
		})
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	Convey("Given a router with the metrics middleware", t, func() {
		m := New()
		router := gin.New()
		router.Use(m.Middleware())
		router.GET("/states/:state_id", func(c *gin.Context) { c.Status(http.StatusOK) })
		router.GET("/metrics", gin.WrapH(m.Handler()))

		serve := func(path string) *httptest.ResponseRecorder {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			return rec
		}

		Convey("When requests hit matched and unmatched paths", func() {
			serve("/states/1")
			serve("/states/2")
			serve("/nowhere")

			Convey("Then matched ones are labelled by route pattern", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/states/:state_id", "GET", "200")), ShouldEqual, 2)
			})

			Convey("Then unmatched ones share one label", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues(unmatchedRoute, "GET", "404")), ShouldEqual, 1)
			})

			Convey("Then the handler exposes them", func() {
				rec := serve("/metrics")
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.Contains(rec.Body.String(), "hbnb_http_request_duration_seconds"), ShouldBeTrue)
			})
		})
	})
}
