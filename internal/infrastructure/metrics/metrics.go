package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sentiment"

// Metrics holds the Prometheus collectors exported by the service
type Metrics struct {
	HTTPRequests          *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	Classifications       *prometheus.CounterVec
	ClassificationErrors  prometheus.Counter
	ClassificationLatency prometheus.Histogram
	TweetsReceived        *prometheus.CounterVec
}

// New registers all collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		Classifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Successful classifications by sentiment label.",
		}, []string{"label"}),
		ClassificationErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classification_errors_total",
			Help:      "Classifier calls that returned an error.",
		}),
		ClassificationLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_duration_seconds",
			Help:      "Latency of calls to the inference endpoint.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		TweetsReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tweets_received_total",
			Help:      "Tweets accepted by the echo endpoint, by whether they were published.",
		}, []string{"published"}),
	}
}

// ObserveRequest records a finished HTTP request
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveClassification records a classifier call. label is ignored when err is non-nil.
func (m *Metrics) ObserveClassification(label string, elapsed time.Duration, err error) {
	m.ClassificationLatency.Observe(elapsed.Seconds())
	if err != nil {
		m.ClassificationErrors.Inc()
		return
	}
	m.Classifications.WithLabelValues(label).Inc()
}

// ObserveTweet records an accepted tweet
func (m *Metrics) ObserveTweet(published bool) {
	m.TweetsReceived.WithLabelValues(strconv.FormatBool(published)).Inc()
}
