package metrics

import "time"

// ResultLabel enumerates per-item result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// RunOutcomeLabel enumerates the final status of a generation run.
type RunOutcomeLabel string

const (
	// RunSuccess: every item was written.
	RunSuccess RunOutcomeLabel = "success"
	// RunPartial: at least one item failed and at least one succeeded.
	RunPartial RunOutcomeLabel = "partial"
	RunFailed  RunOutcomeLabel = "failed"
	// RunEmpty: nothing was selected.
	RunEmpty    RunOutcomeLabel = "empty"
	RunCanceled RunOutcomeLabel = "canceled"
)

// Recorder defines observability hooks for generation runs. job is the image
// job ("og", "hero", "favicon", "default-og"); kind is the work item kind
// ("post", "static", "asset").
type Recorder interface {
	ObserveItemDuration(job, kind string, d time.Duration)
	IncItemResult(job, kind string, result ResultLabel)
	ObserveRunDuration(job string, d time.Duration)
	IncRunOutcome(job string, outcome RunOutcomeLabel)
	SetLastRun(job string, t time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveItemDuration(string, string, time.Duration) {}
func (NoopRecorder) IncItemResult(string, string, ResultLabel)         {}
func (NoopRecorder) ObserveRunDuration(string, time.Duration)          {}
func (NoopRecorder) IncRunOutcome(string, RunOutcomeLabel)             {}
func (NoopRecorder) SetLastRun(string, time.Time)                      {}
