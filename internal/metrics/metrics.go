package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_cache_total",
			Help: "Catalog cache lookups by result.",
		},
		[]string{"result"},
	)

	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_mutations_total",
			Help: "Cart mutations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	CheckoutSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_submissions_total",
			Help: "Order submissions by outcome.",
		},
		[]string{"outcome"},
	)

	CheckoutSubmitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_checkout_submit_duration_seconds",
			Help:    "Time spent finalizing payment and placing the order.",
			Buckets: prometheus.DefBuckets,
		},
	)

	ExpiredCartsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_expired_carts_purged_total",
			Help: "Expired carts removed by the janitor.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// Middleware must wrap the ServeMux directly; the route label is the
// pattern the mux matched, read after the request is served.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {

			duration := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			statusCodeStr := strconv.Itoa(status)
			route := routeLabel(r)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, route).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(ww, r)

	})
}

func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}

	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return path
	}

	return r.Pattern
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
