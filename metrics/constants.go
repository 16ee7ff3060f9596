/* constants.go
 * Names, help text and labels for the prometheus metrics exported by the service
 * Authors: Zachary Bower
 */

package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal       = "fpl_http_requests_total"
	MetricNameHTTPRequestDuration     = "fpl_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight    = "fpl_http_requests_in_flight"
	MetricNameUpstreamRequestsTotal   = "fpl_upstream_requests_total"
	MetricNameUpstreamRequestDuration = "fpl_upstream_request_duration_seconds"
	MetricNameEligiblePlayers         = "fpl_eligible_players"
	MetricNameRecommendationFaults    = "fpl_buy_recommendation_faults_total"
	MetricNameBotCommandsTotal        = "fpl_bot_commands_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal       = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration     = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight    = "Current number of HTTP requests being served"
	HelpTextUpstreamRequestsTotal   = "Total number of requests made to the FPL api"
	HelpTextUpstreamRequestDuration = "FPL api request latency in seconds"
	HelpTextEligiblePlayers         = "Size of the eligible player pool in the last ranking pass"
	HelpTextRecommendationFaults    = "Buy recommendations that fell back to the default score"
	HelpTextBotCommandsTotal        = "Total number of Discord bot commands handled"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"
	LabelCommand  = "command"
)

// HTTPLatencyBuckets are histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
