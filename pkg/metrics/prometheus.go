package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the registry service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Engine metrics
	registrations   prometheus.Counter
	claims          prometheus.Counter
	imports         prometheus.Counter
	feesCollected   prometheus.Counter
	engineErrors    *prometheus.CounterVec
	boardUsers      prometheus.Gauge
	gadgetsTracked  prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Event bus and webhook metrics
	busDepth         prometheus.Gauge
	busPublished     prometheus.Counter
	busDropped       prometheus.Counter
	webhookDelivered prometheus.Counter
	webhookRetries   prometheus.Counter
	webhookFailures  prometheus.Counter

	// Collaborator metrics
	rateLimited      prometheus.Counter
	statsCacheHits   prometheus.Counter
	statsCacheMisses prometheus.Counter
}

// Global metrics manager on a custom registry, keeping default Go runtime
// metrics out of the scrape.
var (
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry
	globalManager  *Manager                   //nolint:gochecknoglobals // singleton manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hackapp",
		subsystem:        "registry",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.registrations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "registrations_total",
		Help:      "Total number of gadgets successfully registered",
	})
	m.claims = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "claims_total",
		Help:      "Total number of shortcuts successfully claimed",
	})
	m.imports = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_total",
		Help:      "Total number of gadgets re-registered by import",
	})
	m.feesCollected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fees_collected_wei_total",
		Help:      "Running total of registration fees in wei",
	})
	m.engineErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "engine_errors_total",
		Help:      "Engine precondition failures by error kind",
	}, []string{"kind"})
	m.boardUsers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_users",
		Help:      "Number of users on the leaderboard",
	})
	m.gadgetsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "gadgets_total",
		Help:      "Total number of gadgets ever registered",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint and status code",
	}, []string{"endpoint", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by endpoint",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint"})

	m.busDepth = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "eventbus_depth",
		Help:      "Current number of queued domain events",
	})
	m.busPublished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "eventbus_published_total",
		Help:      "Domain events accepted onto the bus",
	})
	m.busDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "eventbus_dropped_total",
		Help:      "Domain events dropped due to a full or closed bus",
	})
	m.webhookDelivered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "webhook_deliveries_total",
		Help:      "Webhook deliveries that eventually succeeded",
	})
	m.webhookRetries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "webhook_retries_total",
		Help:      "Webhook delivery attempts that were retried",
	})
	m.webhookFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "webhook_failures_total",
		Help:      "Webhook deliveries abandoned after exhausting retries",
	})

	m.rateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-user rate limiter",
	})
	m.statsCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stats_cache_hits_total",
		Help:      "UserStats lookups served from the cache",
	})
	m.statsCacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stats_cache_misses_total",
		Help:      "UserStats lookups that had to recompute",
	})
}

// Handler returns the HTTP handler exposing the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// Package-level helpers against the global manager.

func RecordRegistration()               { globalManager.registrations.Inc() }
func RecordClaim()                      { globalManager.claims.Inc() }
func RecordImport()                     { globalManager.imports.Inc() }
func RecordFees(wei int64)              { globalManager.feesCollected.Add(float64(wei)) }
func RecordEngineError(kind string)     { globalManager.engineErrors.WithLabelValues(kind).Inc() }
func UpdateBoardUsers(n int)            { globalManager.boardUsers.Set(float64(n)) }
func UpdateGadgetsTracked(n int64)      { globalManager.gadgetsTracked.Set(float64(n)) }
func RecordHTTPRequest(endpoint, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, status).Inc()
}
func RecordHTTPDuration(endpoint string, seconds float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint).Observe(seconds)
}
func UpdateBusDepth(n int)              { globalManager.busDepth.Set(float64(n)) }
func RecordBusPublished()               { globalManager.busPublished.Inc() }
func RecordBusDropped()                 { globalManager.busDropped.Inc() }
func RecordWebhookDelivered()           { globalManager.webhookDelivered.Inc() }
func RecordWebhookRetry()               { globalManager.webhookRetries.Inc() }
func RecordWebhookFailure()             { globalManager.webhookFailures.Inc() }
func RecordRateLimited()                { globalManager.rateLimited.Inc() }
func RecordStatsCacheHit()              { globalManager.statsCacheHits.Inc() }
func RecordStatsCacheMiss()             { globalManager.statsCacheMisses.Inc() }
