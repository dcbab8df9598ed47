// Package metrics records approximation runs as Prometheus collectors on a
// private registry and can dump them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns a registry and the collectors for one process.
type Recorder struct {
	registry *prometheus.Registry

	RunsTotal     *prometheus.CounterVec
	FailuresTotal *prometheus.CounterVec
	Vertices      prometheus.Gauge
	RunDuration   *prometheus.HistogramVec
	TourLength    prometheus.Gauge
	TourMiles     prometheus.Gauge
	MSTWeight     prometheus.Gauge
}

// NewRecorder builds a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mstour_runs_total",
			Help: "Total number of approximation runs by MST method",
		}, []string{"method"}),
		FailuresTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mstour_failures_total",
			Help: "Total number of failed runs by stage",
		}, []string{"stage"}),
		Vertices: f.NewGauge(prometheus.GaugeOpts{
			Name: "mstour_vertices",
			Help: "Number of points in the last run",
		}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mstour_run_duration_seconds",
			Help:    "Wall time of a pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"stage"}),
		TourLength: f.NewGauge(prometheus.GaugeOpts{
			Name: "mstour_tour_length_units",
			Help: "Length of the last tour in input units",
		}),
		TourMiles: f.NewGauge(prometheus.GaugeOpts{
			Name: "mstour_tour_length_miles",
			Help: "Length of the last tour in miles",
		}),
		MSTWeight: f.NewGauge(prometheus.GaugeOpts{
			Name: "mstour_mst_weight_units",
			Help: "Weight of the last spanning tree in input units",
		}),
	}
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveStage records the duration of one stage.
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	r.RunDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// Failure counts a failed stage.
func (r *Recorder) Failure(stage string) {
	r.FailuresTotal.WithLabelValues(stage).Inc()
}

// Run records a successful run.
func (r *Recorder) Run(method string, vertices int, length, miles, mstWeight float64) {
	r.RunsTotal.WithLabelValues(method).Inc()
	r.Vertices.Set(float64(vertices))
	r.TourLength.Set(length)
	r.TourMiles.Set(miles)
	r.MSTWeight.Set(mstWeight)
}

// WriteTextfile writes every collector to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
