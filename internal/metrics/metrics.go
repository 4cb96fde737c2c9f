// Package metrics records pipeline stage and job metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "apkrepack"

// Recorder captures stage durations and job outcomes.
type Recorder interface {
	ObserveStage(stage, status string, duration time.Duration)
	ObserveJob(success bool, duration time.Duration)
}

// Noop implements Recorder without emitting anything.
type Noop struct{}

func (Noop) ObserveStage(string, string, time.Duration) {}
func (Noop) ObserveJob(bool, time.Duration)             {}

// Prom implements Recorder on a private Prometheus registry.
type Prom struct {
	registry      *prometheus.Registry
	stageDuration *prometheus.HistogramVec
	jobsCompleted *prometheus.CounterVec
	jobDuration   prometheus.Histogram
}

// NewProm constructs a Prom with its own registry.
func NewProm() *Prom {
	p := &Prom{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration by stage and status",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"stage", "status"}),
		jobsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_completed_total",
			Help:      "Jobs completed by outcome",
		}, []string{"outcome"}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "End-to-end job duration",
			Buckets:   []float64{5, 15, 30, 60, 120, 300, 600},
		}),
	}
	p.registry.MustRegister(p.stageDuration, p.jobsCompleted, p.jobDuration)

	return p
}

// ObserveStage implements Recorder.
func (p *Prom) ObserveStage(stage, status string, duration time.Duration) {
	p.stageDuration.WithLabelValues(stage, status).Observe(duration.Seconds())
}

// ObserveJob implements Recorder.
func (p *Prom) ObserveJob(success bool, duration time.Duration) {
	outcome := "failed"
	if success {
		outcome = "success"
	}

	p.jobsCompleted.WithLabelValues(outcome).Inc()
	p.jobDuration.Observe(duration.Seconds())
}

// WriteTextfile writes the current metrics in the text exposition format.
func (p *Prom) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
