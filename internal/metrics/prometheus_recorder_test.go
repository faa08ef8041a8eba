package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveItemDuration("og", "post", 150*time.Millisecond)
	pr.IncItemResult("og", "post", ResultSuccess)
	pr.IncItemResult("og", "post", ResultSuccess)
	pr.IncItemResult("og", "static", ResultFailed)
	pr.ObserveRunDuration("og", 500*time.Millisecond)
	pr.IncRunOutcome("og", RunPartial)
	pr.SetLastRun("og", time.Unix(1700000000, 0))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)

	path := filepath.Join(t.TempDir(), "sitegen.prom")
	require.NoError(t, WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `sitegen_item_results_total{job="og",kind="post",result="success"} 2`)
	assert.Contains(t, text, `sitegen_item_results_total{job="og",kind="static",result="failed"} 1`)
	assert.Contains(t, text, `sitegen_run_outcomes_total{job="og",outcome="partial"} 1`)
	assert.Contains(t, text, `sitegen_last_run_timestamp_seconds{job="og"} 1.7e+09`)
	assert.Contains(t, text, `sitegen_item_duration_seconds_count{job="og",kind="post"} 1`)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveItemDuration("og", "post", time.Second)
		pr.IncItemResult("og", "post", ResultSuccess)
		pr.ObserveRunDuration("og", time.Second)
		pr.IncRunOutcome("og", RunSuccess)
		pr.SetLastRun("og", time.Now())
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncItemResult("favicon", "asset", ResultSuccess)

	path := filepath.Join(t.TempDir(), "sitegen.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sitegen_item_results_total{job="favicon",kind="asset",result="success"} 1`)
}
