package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	summariesComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "training",
		Name:      "summaries_computed_total",
		Help:      "Training summaries computed, by workout code.",
	}, []string{"workout_type"})
	packagesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "training",
		Name:      "packages_rejected_total",
		Help:      "Sensor packages rejected by the record factory, by reason.",
	}, []string{"reason"})
	caloriesBurned = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fittrack",
		Subsystem: "training",
		Name:      "calories_burned",
		Help:      "Calories burned per computed summary.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600, 3200},
	}, []string{"workout_type"})
)

func init() {
	prometheus.MustRegister(summariesComputed, packagesRejected, caloriesBurned)
}

// RecordSummary counts one computed summary for the workout code.
func RecordSummary(code string, calories float64) {
	summariesComputed.WithLabelValues(code).Inc()
	caloriesBurned.WithLabelValues(code).Observe(calories)
}

// RecordRejected counts a sensor package the factory refused.
func RecordRejected(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	packagesRejected.WithLabelValues(reason).Inc()
}
