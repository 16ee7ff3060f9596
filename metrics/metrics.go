/* metrics.go
 * Prometheus collectors registered on the default registry and exposed at /metrics
 * Authors: Zachary Bower
 */

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

// Upstream Metrics
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRequestsTotal,
			Help: HelpTextUpstreamRequestsTotal,
		},
		[]string{LabelEndpoint, LabelOutcome},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameUpstreamRequestDuration,
			Help:    HelpTextUpstreamRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Pipeline Metrics
var (
	EligiblePlayers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameEligiblePlayers,
			Help: HelpTextEligiblePlayers,
		},
	)

	RecommendationFaults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecommendationFaults,
			Help: HelpTextRecommendationFaults,
		},
	)
)

// Bot Metrics
var (
	BotCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBotCommandsTotal,
			Help: HelpTextBotCommandsTotal,
		},
		[]string{LabelCommand},
	)
)
