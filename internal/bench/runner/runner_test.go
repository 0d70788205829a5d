package runner

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/engine"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExecutor struct {
	name  string
	rank  map[string][]string
	fail  map[string]bool
	calls atomic.Int32
	lastK atomic.Int32
}

func (s *stubExecutor) Execute(ctx context.Context, q dataset.Query, k int) (*engine.Execution, error) {
	s.calls.Add(1)
	s.lastK.Store(int32(k))
	if s.fail[q.ID] {
		return nil, errors.New("engine down")
	}
	return &engine.Execution{RankedDocIDs: s.rank[q.ID], Latency: time.Millisecond}, nil
}

func (s *stubExecutor) Name() string { return s.name }
func (s *stubExecutor) Close() error { return nil }

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Name: "dev",
		Queries: []dataset.Query{
			{ID: "q1", Text: "first", Truth: []string{"d1"}},
			{ID: "q2", Text: "second", Truth: []string{"x"}},
		},
	}
}

func TestRunner_RunJob(t *testing.T) {
	stub := &stubExecutor{
		name: "bm25",
		rank: map[string][]string{
			"q1": {"d2", "d1", "d3"},
			"q2": {"x", "y"},
		},
	}
	job := spec.Job{Name: "nq", Dataset: "dev.jsonl", Engines: []string{"bm25"}}

	r := New(DefaultConfig())
	jr, err := r.RunJob(context.Background(), job, testDataset(),
		map[string]engine.Executor{"bm25": stub},
		map[string]spec.Engine{"bm25": {Type: "api", Concurrency: 2}})
	require.NoError(t, err)

	require.Len(t, jr.Engines, 1)
	er := jr.Engines[0]
	require.NoError(t, er.Err)
	assert.Equal(t, 2, jr.QueryCount)
	assert.Equal(t, []string{"q1", "q2"}, er.QueryIDs)
	assert.InDelta(t, 0.75, er.Scores.Means["mrr"], 1e-9)
	assert.InDelta(t, 0.5, er.Scores.Means["p1"], 1e-9)
	assert.EqualValues(t, spec.DefaultTopK, stub.lastK.Load())
	assert.Equal(t, 2, er.Latency.SampleCount)
}

func TestRunner_FailedQueriesExcluded(t *testing.T) {
	stub := &stubExecutor{
		name: "flaky",
		rank: map[string][]string{"q1": {"d1"}},
		fail: map[string]bool{"q2": true},
	}
	job := spec.Job{Name: "nq", Engines: []string{"flaky"}}

	jr, err := New(DefaultConfig()).RunJob(context.Background(), job, testDataset(),
		map[string]engine.Executor{"flaky": stub}, nil)
	require.NoError(t, err)

	er := jr.Engines[0]
	require.NoError(t, er.Err)
	assert.Equal(t, 1, er.CollectFailed)
	assert.Equal(t, []string{"q1"}, er.QueryIDs)
	assert.InDelta(t, 1.0, er.Scores.Means["mrr"], 1e-9)
}

func TestRunner_EngineFailsEntirely(t *testing.T) {
	stub := &stubExecutor{name: "down", fail: map[string]bool{"q1": true, "q2": true}}
	job := spec.Job{Name: "nq", Engines: []string{"down"}}

	jr, err := New(DefaultConfig()).RunJob(context.Background(), job, testDataset(),
		map[string]engine.Executor{"down": stub}, nil)
	require.NoError(t, err)

	er := jr.Engines[0]
	assert.ErrorIs(t, er.Err, ErrNothingCollected)
	assert.Nil(t, er.Scores)
	assert.Equal(t, 2, er.CollectFailed)
}

func TestRunner_WarmupAndIterations(t *testing.T) {
	stub := &stubExecutor{name: "bm25", rank: map[string][]string{"q1": {"d1"}, "q2": {"x"}}}
	cfg := DefaultConfig()
	cfg.WarmupRuns = 1
	cfg.Runs = 3

	col, err := New(cfg).Collect(context.Background(), stub, testDataset().Queries, spec.Engine{})
	require.NoError(t, err)

	assert.EqualValues(t, 8, stub.calls.Load())
	assert.Equal(t, 3, col.Queries[0].Latency.SampleCount)
	assert.Len(t, col.Predictions(), 2)
}

func TestRunner_RateLimit(t *testing.T) {
	stub := &stubExecutor{name: "bm25"}
	queries := make([]dataset.Query, 4)
	for i := range queries {
		queries[i] = dataset.Query{ID: string(rune('a' + i))}
	}

	start := time.Now()
	_, err := New(DefaultConfig()).Collect(context.Background(), stub, queries, spec.Engine{RateLimit: 20, Concurrency: 4})
	require.NoError(t, err)

	// burst of one at 20/s: the fourth request waits ~150ms
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubExecutor{name: "bm25"}
	_, err := New(DefaultConfig()).Collect(ctx, stub, testDataset().Queries, spec.Engine{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	exec := engine.NewFileExecutor("run", []dataset.Prediction{{QueryID: "q1", DocIDs: []string{"d1"}}})
	job := spec.Job{Name: "nq", Engines: []string{"run"}, Output: dir}

	_, err := New(DefaultConfig()).RunJob(context.Background(), job, testDataset(),
		map[string]engine.Executor{"run": exec}, nil)
	require.NoError(t, err)

	preds, err := dataset.LoadPredictions(filepath.Join(dir, "nq.run.jsonl"))
	require.NoError(t, err)
	require.Len(t, preds, 2)
	assert.Equal(t, []string{"d1"}, preds[0].DocIDs)
	assert.Empty(t, preds[1].DocIDs)
}

func TestRunner_Score(t *testing.T) {
	preds := []dataset.Prediction{{QueryID: "q1", DocIDs: []string{"d1"}}}

	er, err := New(DefaultConfig()).Score(context.Background(), testDataset(), preds)
	require.NoError(t, err)

	assert.Equal(t, []string{"q2"}, er.Missing)
	assert.Equal(t, 2, er.Scores.Evaluated)
	assert.InDelta(t, 0.5, er.Scores.Means["mrr"], 1e-9)
}

func TestConfigFromSpec(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := ConfigFromSpec(spec.MetricsConfig{}, spec.RunsConfig{})
		require.NoError(t, err)
		assert.Equal(t, spec.DefaultTopK, cfg.TopK)
		assert.Equal(t, catalog.DefaultReport, cfg.Scoring.Report)
		assert.Equal(t, catalog.DefaultNames, cfg.Scoring.Catalog.Names())
	})

	t.Run("include all", func(t *testing.T) {
		cfg, err := ConfigFromSpec(spec.MetricsConfig{Catalog: []string{"P@1", "NDCG@10"}, IncludeAll: true, Graded: true}, spec.RunsConfig{Iterations: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "ndcg10"}, cfg.Scoring.Report)
		assert.True(t, cfg.Scoring.Options.Graded)
		assert.Equal(t, 2, cfg.Runs)
	})

	t.Run("strict rejects unknown", func(t *testing.T) {
		_, err := ConfigFromSpec(spec.MetricsConfig{Catalog: []string{"MAP"}, Strict: true}, spec.RunsConfig{})
		assert.ErrorIs(t, err, catalog.ErrUnknownMetric)
	})
}
