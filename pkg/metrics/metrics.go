package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/store"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	LeadsCreated       prometheus.Counter
	LeadsUpdated       prometheus.Counter
	StageTransitions   *prometheus.CounterVec
	ActivitiesRecorded *prometheus.CounterVec
	FeedLinks          prometheus.Counter
	FollowUpsDue       prometheus.Gauge
	ExportsCreated     *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a Metrics instance registered on a fresh registry, with the
// Go runtime and process collectors included.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry creates a Metrics instance registered on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	sizeBuckets := []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000}

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: sizeBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: sizeBuckets,
			},
			[]string{"method", "path"},
		),

		LeadsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "crm_leads_created_total",
			Help: "Total number of leads added to the pipeline",
		}),
		LeadsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "crm_leads_updated_total",
			Help: "Total number of lead field updates",
		}),
		StageTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_stage_transitions_total",
				Help: "Total number of pipeline stage transitions",
			},
			[]string{"from", "to"},
		),
		ActivitiesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_activities_recorded_total",
				Help: "Total number of activities recorded",
			},
			[]string{"type"},
		),
		FeedLinks: factory.NewCounter(prometheus.CounterOpts{
			Name: "crm_feed_links_total",
			Help: "Total number of feed-to-lead links",
		}),
		FollowUpsDue: factory.NewGauge(prometheus.GaugeOpts{
			Name: "crm_followups_due",
			Help: "Open leads whose follow-up date is today or earlier",
		}),
		ExportsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_exports_created_total",
				Help: "Total number of exports created",
			},
			[]string{"report", "format"},
		),

		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, c.Path()).Observe(float64(req.ContentLength))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			// route pattern, e.g. /api/v1/leads/:id
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, status).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return nil
		}
	}
}

// StoreListener returns a store listener that counts business events.
func (m *Metrics) StoreListener() store.Listener {
	return func(e store.Event) {
		switch e.Kind {
		case store.EventLeadAdded:
			m.LeadsCreated.Inc()
		case store.EventLeadUpdated:
			m.LeadsUpdated.Inc()
		case store.EventLeadStageMoved:
			m.StageTransitions.WithLabelValues(string(e.FromStage), string(e.ToStage)).Inc()
		case store.EventActivityAdded:
			if e.Activity != nil {
				m.ActivitiesRecorded.WithLabelValues(string(e.Activity.Type)).Inc()
			}
		case store.EventFeedLinked:
			m.FeedLinks.Inc()
		}
	}
}

// SetFollowUpsDue updates the follow-ups due gauge.
func (m *Metrics) SetFollowUpsDue(n int) {
	m.FollowUpsDue.Set(float64(n))
}

// RecordExport increments the exports counter.
func (m *Metrics) RecordExport(report, format string) {
	m.ExportsCreated.WithLabelValues(report, format).Inc()
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
