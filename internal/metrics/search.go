package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "searches_total",
			Help:      "Total number of search requests by source and outcome",
		},
		[]string{"source", "status"}, // source: "search" / "listing"
	)

	SearchResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docsearch",
			Name:      "search_result_count",
			Help:      "Number of results returned per search after filtering",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	ActivityLogFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "activity_log_failures_total",
			Help:      "Total activity events that could not be recorded",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResultCount)
	prometheus.MustRegister(ActivityLogFailures)
	searchMetricsRegistered = true
}
