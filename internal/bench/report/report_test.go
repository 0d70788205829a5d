package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"mrr5":   "mrr@5",
		"mrr":    "mrr",
		"p100":   "p@100",
		"r1":     "r@1",
		"ndcg10": "ndcg@10",
		"bleu2":  "bleu-2",
	}
	for in, want := range tests {
		assert.Equal(t, want, Label(in), in)
	}
}

func TestSummary(t *testing.T) {
	means := map[string]float64{"mrr5": 0.75, "mrr": 0.75, "p1": 0.5, "r100": 1}

	got := Summary(means, catalog.DefaultReport)
	assert.Equal(t, "mrr@5:0.75, mrr:0.75, p@1:0.5, r@100:1", got)
	assert.Empty(t, Summary(nil, catalog.DefaultReport))
}

func benchmarkResult() *runner.BenchmarkResult {
	cfg := runner.DefaultConfig()
	return &runner.BenchmarkResult{
		Config: cfg,
		Jobs: []*runner.JobResult{{
			JobName:    "nq-dev",
			Dataset:    "dev4retrieval",
			QueryCount: 3,
			Engines: []runner.EngineResult{
				{
					Engine:        "bm25",
					CollectFailed: 1,
					Latency:       runner.ComputeLatencyStats([]time.Duration{2 * time.Millisecond, 4 * time.Millisecond}),
					Scores: &ranking.Result{
						Means:     map[string]float64{"mrr": 0.5, "p1": 0.25},
						Evaluated: 2,
					},
				},
				{
					Engine: "dense",
					Err:    errors.New("no predictions collected"),
				},
			},
		}},
	}
}

func TestGenerate(t *testing.T) {
	r := Generate(benchmarkResult(), map[string]spec.Engine{
		"bm25": {Type: "elasticsearch", Connection: "http://es:9200", Index: "nq"},
	})

	assert.Equal(t, catalog.DefaultReport, r.Metrics)
	assert.Equal(t, spec.DefaultTopK, r.Meta.TopK)
	assert.Equal(t, "nq", r.Meta.Engines["bm25"].Index)
	require.Len(t, r.Jobs, 1)
	require.Len(t, r.Jobs[0].Engines, 2)

	bm25 := r.Jobs[0].Engines[0]
	assert.Equal(t, 2, bm25.Evaluated)
	assert.Equal(t, 1, bm25.CollectFailed)
	require.NotNil(t, bm25.Latency)
	assert.Equal(t, 2, bm25.Latency.SampleCount)

	dense := r.Jobs[0].Engines[1]
	assert.Equal(t, "no predictions collected", dense.Error)
	assert.Empty(t, dense.Means)
	assert.Nil(t, dense.Latency)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Generate(benchmarkResult(), nil), &buf)

	out := buf.String()
	assert.Contains(t, out, "--- Job: nq-dev (dev4retrieval, 3 queries) ---")
	assert.Contains(t, out, "mrr@5")
	assert.Contains(t, out, "0.5000")
	assert.Contains(t, out, "dense: no predictions collected")
	assert.Contains(t, out, "Latency (per request)")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "nq.json")
	require.NoError(t, WriteJSON(Generate(benchmarkResult(), nil), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.InDelta(t, 0.5, decoded.Jobs[0].Engines[0].Means["mrr"], 1e-9)
}

func TestRuns(t *testing.T) {
	runs := Runs(Generate(benchmarkResult(), nil))

	require.Len(t, runs, 1)
	assert.Equal(t, "nq-dev", runs[0].Name)
	assert.Equal(t, "bm25", runs[0].Engine)
	assert.Equal(t, 3, runs[0].QueryCount)
	assert.Equal(t, 1, runs[0].Failed)
}

func TestFromScore(t *testing.T) {
	er := &runner.EngineResult{
		Engine:  "predictions",
		Missing: []string{"q9"},
		Scores:  &ranking.Result{Means: map[string]float64{"p1": 1}, Evaluated: 4},
	}
	r := FromScore("dev", 4, er, nil)

	require.Len(t, r.Jobs, 1)
	assert.Equal(t, 1, r.Jobs[0].Engines[0].Missing)
	assert.Equal(t, catalog.DefaultReport, r.Metrics)
}
