package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	planRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelbot_plan_requests_total",
		Help: "Plan submissions by outcome.",
	}, []string{"outcome"})

	planRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "travelbot_plan_request_duration_seconds",
		Help:    "Latency of plan submissions.",
		Buckets: prometheus.DefBuckets,
	})

	citiesLoadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travelbot_city_loads_total",
		Help: "Successful wholesale city directory loads.",
	})

	mapSyncsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelbot_map_syncs_total",
		Help: "Map point syncs by result.",
	}, []string{"result"})
)

// RecordPlanRequest records one completed plan submission.
func RecordPlanRequest(outcome string, duration time.Duration) {
	planRequestsTotal.WithLabelValues(outcome).Inc()
	planRequestDuration.Observe(duration.Seconds())
}

// RecordCityLoad records one successful city directory replacement.
func RecordCityLoad() {
	citiesLoadedTotal.Inc()
}

// RecordMapSync records one SyncPoints call outcome.
func RecordMapSync(result string) {
	mapSyncsTotal.WithLabelValues(result).Inc()
}
