package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the map
// generator.
type Metrics struct {
	RecordsLoaded  prometheus.Counter
	RecordsSkipped prometheus.Counter // records without coordinates
	RunsTotal      prometheus.Counter
	RunErrors      prometheus.Counter

	MapsRendered   *prometheus.CounterVec // label: map={heatmap,markers,state_summary}
	RenderDuration *prometheus.HistogramVec

	LastRunTimestamp prometheus.Gauge
	GeneratorReady   prometheus.Gauge
}

// NewMetrics creates and registers all generator metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "opportunity_maps",
			Name:      "records_loaded_total",
			Help:      "Total airport records read from the input source.",
		}),
		RecordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "opportunity_maps",
			Name:      "records_skipped_total",
			Help:      "Records excluded from rendered layers for lack of coordinates.",
		}),
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "opportunity_maps",
			Name:      "runs_total",
			Help:      "Completed generation runs.",
		}),
		RunErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "opportunity_maps",
			Name:      "run_errors_total",
			Help:      "Generation runs that failed before writing all maps.",
		}),
		MapsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "opportunity_maps",
			Name:      "maps_rendered_total",
			Help:      "Rendered map documents by map name.",
		}, []string{"map"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "opportunity_maps",
			Name:      "render_duration_seconds",
			Help:      "Per-map render and write duration.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"map"}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "opportunity_maps",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last successful generation run.",
		}),
		GeneratorReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "opportunity_maps",
			Name:      "generator_ready",
			Help:      "1 once a generation run has completed, 0 before.",
		}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.RecordsSkipped,
		m.RunsTotal,
		m.RunErrors,
		m.MapsRendered,
		m.RenderDuration,
		m.LastRunTimestamp,
		m.GeneratorReady,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "opportunity_maps", Name: "records_loaded_total"}),
		RecordsSkipped:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "opportunity_maps", Name: "records_skipped_total"}),
		RunsTotal:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "opportunity_maps", Name: "runs_total"}),
		RunErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "opportunity_maps", Name: "run_errors_total"}),
		MapsRendered:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "opportunity_maps", Name: "maps_rendered_total"}, []string{"map"}),
		RenderDuration:   prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "opportunity_maps", Name: "render_duration_seconds"}, []string{"map"}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "opportunity_maps", Name: "last_run_timestamp_seconds"}),
		GeneratorReady:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "opportunity_maps", Name: "generator_ready"}),
	}
}
