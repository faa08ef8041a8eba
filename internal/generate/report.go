package generate

import (
	"time"

	"github.com/justoffbyone/sitegen/internal/foundation"
	"github.com/justoffbyone/sitegen/internal/metrics"
)

// Artifact is a written image.
type Artifact struct {
	Path     string
	Bytes    int
	Duration time.Duration
}

// ItemResult pairs a work item with its outcome.
type ItemResult struct {
	Item   WorkItem
	Result foundation.Result[Artifact, error]
}

// Report is the outcome of one Driver.Run.
type Report struct {
	RunID    string
	Job      string
	Start    time.Time
	End      time.Time
	Items    []ItemResult
	Canceled bool
}

// Succeeded returns the results that wrote an image.
func (r *Report) Succeeded() []ItemResult {
	return r.filter(true)
}

// Failed returns the results that did not.
func (r *Report) Failed() []ItemResult {
	return r.filter(false)
}

func (r *Report) filter(ok bool) []ItemResult {
	var out []ItemResult
	for _, res := range r.Items {
		if res.Result.IsOk() == ok {
			out = append(out, res)
		}
	}
	return out
}

// Artifacts lists the written images in run order.
func (r *Report) Artifacts() []Artifact {
	var out []Artifact
	for _, res := range r.Items {
		if a, err := res.Result.Get(); err == nil {
			out = append(out, a)
		}
	}
	return out
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Outcome classifies the run.
func (r *Report) Outcome() metrics.RunOutcomeLabel {
	failed := len(r.Failed())
	switch {
	case r.Canceled:
		return metrics.RunCanceled
	case len(r.Items) == 0:
		return metrics.RunEmpty
	case failed == 0:
		return metrics.RunSuccess
	case failed == len(r.Items):
		return metrics.RunFailed
	default:
		return metrics.RunPartial
	}
}
