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
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Drawing metric names
const (
	MetricNameStageTransitions = "draw_stage_transitions_total"
	MetricNameRoundsCompleted  = "draw_rounds_completed_total"
	MetricNameWinnersDrawn     = "draw_winners_total"
	MetricNameRemainingPool    = "draw_remaining_pool"
	MetricNameSessions         = "draw_sessions_total"
	MetricNameStoreOperations  = "draw_store_operations_total"
	MetricNameStoreDuration    = "draw_store_operation_duration_seconds"
	MetricNameRevealDuration   = "draw_reveal_duration_seconds"
	MetricNameRevealsForced    = "draw_reveals_forced_total"
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
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Drawing metric help text
const (
	HelpTextStageTransitions = "Total number of stage transitions"
	HelpTextRoundsCompleted  = "Total number of prizes whose winners were committed"
	HelpTextWinnersDrawn     = "Total number of winners drawn"
	HelpTextRemainingPool    = "Participants still eligible to win"
	HelpTextSessions         = "Session lifecycle events by kind"
	HelpTextStoreOperations  = "Session store operations by outcome"
	HelpTextStoreDuration    = "Session store operation latency in seconds"
	HelpTextRevealDuration   = "Wall time of a reveal animation in seconds"
	HelpTextRevealsForced    = "Reveals completed by the deadline instead of an explicit stop"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelFrom      = "from"
	LabelTo        = "to"
	LabelPrize     = "prize"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
)

// Store operation labels
const (
	OperationSave  = "save"
	OperationLoad  = "load"
	OperationClear = "clear"

	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StoreLatencyBuckets covers file fsyncs through remote database round trips.
var StoreLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

// RevealBuckets spans the configured reveal window, 1s to 1m.
var RevealBuckets = []float64{1, 2, 3, 5, 8, 10, 15, 20, 30, 60}

// UnmatchedRoute labels requests chi could not route.
const UnmatchedRoute = "unmatched"

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
