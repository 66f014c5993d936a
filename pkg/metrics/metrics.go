package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	RedfinRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfin_requests_total",
			Help: "Total number of calls made to the Redfin API",
		},
		[]string{"operation", "outcome"},
	)
	RedfinRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redfin_request_duration_seconds",
			Help:    "Redfin API call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)
)

var once sync.Once

// Init registers the collectors with the default Prometheus registry.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(RedfinRequestsTotal)
		prometheus.MustRegister(RedfinRequestDuration)
	})
}
