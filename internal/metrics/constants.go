package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Domain metric names
const (
	MetricNameSitemapCacheHits        = "sitemap_cache_hits_total"
	MetricNameSitemapCacheMisses      = "sitemap_cache_misses_total"
	MetricNameSessionsRegistered      = "sessions_registered_total"
	MetricNameSessionsActive          = "sessions_active"
	MetricNameSessionsExpired         = "sessions_expired_total"
	MetricNameDecorationsApplied      = "decorations_applied_total"
	MetricNameExtensionMappingChanges = "extension_mapping_changes_total"
	MetricNameSecurityEvents          = "security_events_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Domain metric help text
const (
	HelpTextSitemapCacheHits        = "Sitemap lookups answered from cache"
	HelpTextSitemapCacheMisses      = "Sitemap lookups that went to the database"
	HelpTextSessionsRegistered      = "Sessions registered for authenticated users"
	HelpTextSessionsActive          = "Currently registered sessions"
	HelpTextSessionsExpired         = "Sessions removed after exceeding their inactive interval"
	HelpTextDecorationsApplied      = "Text decorations applied, by decoration name"
	HelpTextExtensionMappingChanges = "File extension mapping changes, by operation"
	HelpTextSecurityEvents          = "Rejected requests, by reason"
)

// Label names
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelKind       = "kind"
	LabelDecoration = "decoration"
	LabelOperation  = "operation"
	LabelReason     = "reason"
)

// Label values
const (
	KindEntry    = "entry"
	KindChildren = "children"

	OperationAdd    = "add"
	OperationRemove = "remove"

	ReasonAuthFailed  = "auth_failed"
	ReasonRateLimited = "rate_limited"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
