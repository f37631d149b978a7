// Package metric provides Prometheus metrics for envconf.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "envconf"

// Load results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// File outcomes recorded for every directory entry a load considers.
const (
	OutcomeMerged             = "merged"
	OutcomeEmpty              = "empty"
	OutcomeSkippedExtension   = "skipped_extension"
	OutcomeSkippedEnvironment = "skipped_environment"
)

// Registry holds the loader metrics on a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	LoadsTotal   *prometheus.CounterVec
	FilesTotal   *prometheus.CounterVec
	LoadDuration prometheus.Histogram
}

// NewRegistry creates a registry with loader metrics and the runtime
// collectors registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		LoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Configuration loads by result.",
		}, []string{"result"}),
		FilesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_total",
			Help:      "Directory entries considered during loads, by outcome.",
		}, []string{"outcome"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent in a single configuration load.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}),
	}

	r.registry.MustRegister(r.LoadsTotal, r.FilesTotal, r.LoadDuration)
	registerRuntimeCollectors(r.registry)

	return r
}

// ObserveLoad records the result and duration of one load.
func (r *Registry) ObserveLoad(result string, d time.Duration) {
	r.LoadsTotal.WithLabelValues(result).Inc()
	r.LoadDuration.Observe(d.Seconds())
}

// IncFile records the outcome for one directory entry.
func (r *Registry) IncFile(outcome string) {
	r.FilesTotal.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes all metrics in the text exposition format to path,
// suitable for the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
