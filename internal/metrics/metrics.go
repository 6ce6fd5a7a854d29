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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Drawing Metrics
var (
	StageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStageTransitions,
			Help: HelpTextStageTransitions,
		},
		[]string{LabelFrom, LabelTo},
	)

	RoundsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsCompleted,
			Help: HelpTextRoundsCompleted,
		},
		[]string{LabelPrize},
	)

	WinnersDrawn = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWinnersDrawn,
			Help: HelpTextWinnersDrawn,
		},
	)

	RemainingPool = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRemainingPool,
			Help: HelpTextRemainingPool,
		},
	)

	Sessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessions,
			Help: HelpTextSessions,
		},
		[]string{LabelType},
	)

	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreOperations,
			Help: HelpTextStoreOperations,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	StoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameStoreDuration,
			Help:    HelpTextStoreDuration,
			Buckets: StoreLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	RevealDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRevealDuration,
			Help:    HelpTextRevealDuration,
			Buckets: RevealBuckets,
		},
	)

	RevealsForced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRevealsForced,
			Help: HelpTextRevealsForced,
		},
	)
)
