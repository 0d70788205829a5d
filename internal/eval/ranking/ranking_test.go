package ranking

import (
	"context"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateOne(t *testing.T) {
	t.Run("values follow requested order", func(t *testing.T) {
		names := []string{"P@1", "P@10", "R@1", "R@10", "MRR", "MRR@1"}
		got := EvaluateOne([]string{"d1"}, []string{"d2", "d1", "d3"}, names)

		require.Len(t, got, len(names))
		want := []float64{0, 1.0 / 3.0, 0, 1, 0.5, 0}
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-9, names[i])
		}
	})

	t.Run("empty truth", func(t *testing.T) {
		got := EvaluateOne(nil, []string{"d1", "d2"}, []string{"R@1", "R@10", "P@1", "BLEU-1", "BLEU-2"})
		assert.Equal(t, []float64{0, 0, 0, 0, 0}, got)
	})

	t.Run("unknown names keep their slot", func(t *testing.T) {
		got := EvaluateOne([]string{"a"}, []string{"a"}, []string{"MAP", "P@1", "??"})
		assert.Equal(t, []float64{0, 1, 0}, got)
	})

	t.Run("ndcg single hit", func(t *testing.T) {
		got := EvaluateOne([]string{"a"}, []string{"a"}, []string{"NDCG@10"})
		assert.InDelta(t, 1.0, got[0], 1e-9)
	})

	t.Run("idempotent", func(t *testing.T) {
		truth := []string{"a", "c"}
		pred := []string{"c", "b", "a", "c"}
		first := EvaluateOne(truth, pred, catalog.DefaultNames)
		second := EvaluateOne(truth, pred, catalog.DefaultNames)
		assert.Equal(t, first, second)
	})
}

func TestEvaluator_Vector(t *testing.T) {
	e := NewEvaluator(catalog.New("MRR@5", "P@1", "MAP"), catalog.Options{})

	v, err := e.Evaluate([]string{"x"}, []string{"x", "y"})
	require.NoError(t, err)

	assert.Equal(t, []string{"MRR@5", "P@1", "MAP"}, v.Names())

	got, ok := v.Get("P@1")
	assert.True(t, ok)
	assert.InDelta(t, 1.0, got, 1e-9)

	_, ok = v.Get("P@10")
	assert.False(t, ok)

	assert.Equal(t, map[string]float64{"MRR@5": 1, "P@1": 1, "MAP": 0}, v.Map())
	assert.Equal(t, map[string]float64{"mrr5": 1, "p1": 1}, v.Short())
}

func TestEvaluator_StrictBLEU(t *testing.T) {
	e := NewEvaluator(catalog.New("P@1", "BLEU-1"), catalog.Options{Strict: true})

	v, err := e.Evaluate([]string{"a"}, nil)
	assert.ErrorIs(t, err, metrics.ErrEmptyPrediction)
	assert.Len(t, v.Values, 2)
}

func TestEvaluateRanking(t *testing.T) {
	truth := [][]string{{"d1"}, {"x"}}
	pred := [][]string{{"d2", "d1", "d3"}, {"x", "y"}}

	got, err := EvaluateRanking(truth, pred)
	require.NoError(t, err)

	assert.Len(t, got, len(catalog.DefaultReport))
	for _, short := range catalog.DefaultReport {
		assert.Contains(t, got, short)
	}
	assert.NotContains(t, got, "ndcg10")
	assert.NotContains(t, got, "bleu1")

	assert.InDelta(t, 0.75, got["mrr"], 1e-9)
	assert.InDelta(t, 0.5, got["p1"], 1e-9)
	assert.InDelta(t, 0.5, got["r1"], 1e-9)
	assert.InDelta(t, 1.0, got["r10"], 1e-9)
	assert.InDelta(t, (1.0/3.0+0.5)/2, got["p10"], 1e-9)
	assert.InDelta(t, 0.75, got["mrr5"], 1e-9)
}

func TestEvaluateRanking_LengthMismatch(t *testing.T) {
	_, err := EvaluateRanking([][]string{{"a"}, {"b"}}, [][]string{{"a"}})
	require.ErrorIs(t, err, ErrBatchLengthMismatch)
	assert.Contains(t, err.Error(), "2 truth sets, 1 prediction lists")
}

func TestEvaluateRanking_EmptyBatch(t *testing.T) {
	_, err := EvaluateRanking(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestAggregator_IncludeAll(t *testing.T) {
	agg := NewAggregator(DefaultConfig().IncludeAll())

	res, err := agg.Evaluate(context.Background(), [][]string{{"a"}}, [][]string{{"a"}})
	require.NoError(t, err)

	assert.Len(t, res.Means, 16)
	assert.InDelta(t, 1.0, res.Means["ndcg10"], 1e-9)
	assert.InDelta(t, 1.0, res.Means["bleu1"], 1e-9)
	// a single-token id has no bigrams, so BLEU-2 collapses to ~0
	assert.InDelta(t, 0.0, res.Means["bleu2"], 1e-9)
}

func TestAggregator_UnknownAndUnreported(t *testing.T) {
	agg := NewAggregator(Config{
		Catalog: catalog.New("P@1", "MAP"),
		Report:  []string{"p1", "p10"},
	})

	res, err := agg.Evaluate(context.Background(), [][]string{{"a"}, {"b"}}, [][]string{{"a"}, {"a"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"MAP"}, res.Unknown)
	assert.Equal(t, []string{"p10"}, res.Unreported)
	assert.Equal(t, map[string]float64{"p1": 0.5}, res.Means)
}

func TestAggregator_FaultIsolation(t *testing.T) {
	cfg := DefaultConfig().IncludeAll()
	cfg.Options.Strict = true
	agg := NewAggregator(cfg)

	truth := [][]string{{"a"}, {"b"}, {"c"}}
	pred := [][]string{{"a"}, nil, {"x", "c"}}

	res, err := agg.Evaluate(context.Background(), truth, pred)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Evaluated)
	assert.Equal(t, 1, res.Failed)
	assert.ErrorIs(t, res.Queries[1].Err, metrics.ErrEmptyPrediction)
	assert.InDelta(t, 0.75, res.Means["mrr"], 1e-9)
}

func TestAggregator_AllFailed(t *testing.T) {
	cfg := DefaultConfig().IncludeAll()
	cfg.Options.Strict = true

	res, err := NewAggregator(cfg).Evaluate(context.Background(), [][]string{{"a"}}, [][]string{nil})
	require.ErrorIs(t, err, ErrNoScoredQueries)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Failed)
	assert.Empty(t, res.Means)
}

func TestAggregator_ParallelMatchesSequential(t *testing.T) {
	truth := make([][]string, 200)
	pred := make([][]string, 200)
	for i := range truth {
		truth[i] = []string{fmt.Sprintf("d%d", i%7)}
		p := make([]string, 0, 20)
		for j := 0; j < 20; j++ {
			p = append(p, fmt.Sprintf("d%d", (i+j)%11))
		}
		pred[i] = p
	}

	seqCfg := DefaultConfig().IncludeAll()
	parCfg := seqCfg
	parCfg.Workers = 8

	seq, err := NewAggregator(seqCfg).Evaluate(context.Background(), truth, pred)
	require.NoError(t, err)
	par, err := NewAggregator(parCfg).Evaluate(context.Background(), truth, pred)
	require.NoError(t, err)

	require.Equal(t, len(seq.Means), len(par.Means))
	for k, v := range seq.Means {
		assert.InDelta(t, v, par.Means[k], 1e-12, k)
	}
}

func TestAggregator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAggregator(DefaultConfig()).Evaluate(ctx, [][]string{{"a"}}, [][]string{{"a"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAggregator_MRRAtKBoundedByMRR(t *testing.T) {
	e := NewEvaluator(catalog.Default(), catalog.Options{})
	pred := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}

	for _, id := range append(pred, "zz") {
		v, err := e.Evaluate([]string{id}, pred)
		require.NoError(t, err)
		full, _ := v.Get("MRR")
		at5, _ := v.Get("MRR@5")
		at10, _ := v.Get("MRR@10")
		assert.LessOrEqual(t, at5, full)
		assert.LessOrEqual(t, at10, full)
	}
}
