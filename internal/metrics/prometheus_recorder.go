package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitegen"

// itemBuckets cover a 16px favicon up to a slow 1200x630 card.
var itemBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	itemDuration *prom.HistogramVec
	itemResults  *prom.CounterVec
	runDuration  *prom.HistogramVec
	runOutcomes  *prom.CounterVec
	lastRun      *prom.GaugeVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg. A
// nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		itemDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "item_duration_seconds",
			Help:      "Time to render, encode and write one image",
			Buckets:   itemBuckets,
		}, []string{"job", "kind"}),
		itemResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "item_results_total",
			Help:      "Generated images by job, kind and result",
		}, []string{"job", "kind", "result"}),
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total duration of a generation run",
			Buckets:   prom.DefBuckets,
		}, []string{"job"}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Generation runs by final status",
		}, []string{"job", "outcome"}),
		lastRun: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last generation run finished",
		}, []string{"job"}),
	}
	reg.MustRegister(pr.itemDuration, pr.itemResults, pr.runDuration, pr.runOutcomes, pr.lastRun)
	return pr
}

func (p *PrometheusRecorder) ObserveItemDuration(job, kind string, d time.Duration) {
	if p == nil || p.itemDuration == nil {
		return
	}
	p.itemDuration.WithLabelValues(job, kind).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncItemResult(job, kind string, result ResultLabel) {
	if p == nil || p.itemResults == nil {
		return
	}
	p.itemResults.WithLabelValues(job, kind, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(job string, d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.WithLabelValues(job).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(job string, outcome RunOutcomeLabel) {
	if p == nil || p.runOutcomes == nil {
		return
	}
	p.runOutcomes.WithLabelValues(job, string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetLastRun(job string, t time.Time) {
	if p == nil || p.lastRun == nil {
		return
	}
	p.lastRun.WithLabelValues(job).Set(float64(t.Unix()))
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text format, replacing the file atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
