package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	recommendationsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_recommender",
		Subsystem: "engine",
		Name:      "recommendations_total",
		Help:      "Number of recommendation requests served.",
	})

	resultSizeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exercise_recommender",
		Subsystem: "engine",
		Name:      "last_result_size",
		Help:      "Number of exercises in the most recent recommendation.",
	})

	catalogSizeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exercise_recommender",
		Subsystem: "catalog",
		Name:      "size_entries",
		Help:      "Number of entries in the most recently loaded catalog.",
	})

	catalogLoadGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exercise_recommender",
		Subsystem: "catalog",
		Name:      "last_load_timestamp_seconds",
		Help:      "Unix timestamp of the most recent catalog load.",
	})

	trendOverlayCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_recommender",
		Subsystem: "engine",
		Name:      "trend_overlay_applied_total",
		Help:      "Number of recommendations extended by the trend overlay.",
	})
)

func init() {
	prometheus.MustRegister(recommendationsCounter, resultSizeGauge, catalogSizeGauge, catalogLoadGauge, trendOverlayCounter)
}

// RecordRecommendation updates the request counter and result-size watermark.
func RecordRecommendation(resultCount int) {
	recommendationsCounter.Inc()
	resultSizeGauge.Set(float64(resultCount))
}

// RecordTrendOverlay counts recommendations that picked up a trend entry.
func RecordTrendOverlay() {
	trendOverlayCounter.Inc()
}

// RecordCatalogLoad updates the catalog size and load watermark.
func RecordCatalogLoad(size int) {
	catalogSizeGauge.Set(float64(size))
	catalogLoadGauge.Set(float64(time.Now().Unix()))
}
