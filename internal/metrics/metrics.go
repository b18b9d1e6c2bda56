package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Sitemap Metrics
var (
	SitemapCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSitemapCacheHits,
			Help: HelpTextSitemapCacheHits,
		},
		[]string{LabelKind},
	)

	SitemapCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSitemapCacheMisses,
			Help: HelpTextSitemapCacheMisses,
		},
		[]string{LabelKind},
	)
)

// Session Metrics
var (
	SessionsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsRegistered,
			Help: HelpTextSessionsRegistered,
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	SessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsExpired,
			Help: HelpTextSessionsExpired,
		},
	)
)

// Content Metrics
var (
	DecorationsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDecorationsApplied,
			Help: HelpTextDecorationsApplied,
		},
		[]string{LabelDecoration},
	)

	ExtensionMappingChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExtensionMappingChanges,
			Help: HelpTextExtensionMappingChanges,
		},
		[]string{LabelOperation},
	)
)

// Security Metrics
var (
	SecurityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityEvents,
			Help: HelpTextSecurityEvents,
		},
		[]string{LabelReason},
	)
)
