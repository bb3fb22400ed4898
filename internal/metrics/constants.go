package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Game metric names
const (
	MetricNameRoundsResolved = "rounds_resolved_total"
	MetricNameRoundsUnplayed = "rounds_unplayed_total"
	MetricNameCoinsWon       = "coins_won_total"
	MetricNameCoinsLost      = "coins_lost_total"
	MetricNameActiveSessions = "active_sessions"
	MetricNameSessionsClosed = "sessions_closed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of round engine events published"
)

// Game metric help text
const (
	HelpTextRoundsResolved = "Total number of rounds resolved with a selection"
	HelpTextRoundsUnplayed = "Total number of rounds resolved without a selection"
	HelpTextCoinsWon       = "Total coins credited for winning rounds"
	HelpTextCoinsLost      = "Total coins staked on losing rounds"
	HelpTextActiveSessions = "Current number of live game sessions"
	HelpTextSessionsClosed = "Total number of game sessions closed or expired"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelColor   = "result_color"
)

// unmatchedRoute labels requests that no route matched
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgInvalidPayload  = "Round event payload could not be decoded"
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
