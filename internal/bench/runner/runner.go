package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/engine"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/ranking"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type Runner struct {
	config     Config
	aggregator *ranking.Aggregator
}

func New(cfg Config) *Runner {
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	return &Runner{
		config:     cfg,
		aggregator: ranking.NewAggregator(cfg.Scoring),
	}
}

func (r *Runner) RunAll(
	ctx context.Context,
	bs *spec.BenchSpec,
	executors map[string]engine.Executor,
) (*BenchmarkResult, error) {
	br := &BenchmarkResult{Config: r.config}

	for _, job := range bs.Jobs {
		ds, err := dataset.LoadFromFile(job.Dataset)
		if err != nil {
			return nil, fmt.Errorf("load dataset for job %q: %w", job.Name, err)
		}

		jr, err := r.RunJob(ctx, job, ds, executors, bs.Engines)
		if err != nil {
			return nil, fmt.Errorf("run job %q: %w", job.Name, err)
		}
		br.Jobs = append(br.Jobs, jr)
	}

	return br, nil
}

// RunJob collects predictions from each job engine and scores them.
// An engine that fails entirely is reported in its EngineResult; only
// context cancellation aborts the job.
func (r *Runner) RunJob(
	ctx context.Context,
	job spec.Job,
	ds *dataset.Dataset,
	executors map[string]engine.Executor,
	engines map[string]spec.Engine,
) (*JobResult, error) {
	jr := &JobResult{
		JobName:    job.Name,
		Dataset:    ds.Name,
		QueryCount: len(ds.Queries),
	}

	for _, engName := range job.Engines {
		exec, ok := executors[engName]
		if !ok {
			return nil, fmt.Errorf("executor %q not found", engName)
		}

		slog.Info("Collecting predictions", "job", job.Name, "engine", engName, "queries", len(ds.Queries))
		col, err := r.Collect(ctx, exec, ds.Queries, engines[engName])
		if err != nil {
			return nil, err
		}

		if job.Output != "" {
			if err := writeCollection(job, col); err != nil {
				return nil, err
			}
		}

		jr.Engines = append(jr.Engines, r.scoreCollection(ctx, ds, col))
	}

	return jr, nil
}

// Collect asks exec for the top-K ids of every query. Failed queries keep
// their error in the returned collection.
func (r *Runner) Collect(
	ctx context.Context,
	exec engine.Executor,
	queries []dataset.Query,
	eng spec.Engine,
) (*Collection, error) {
	col := &Collection{Engine: exec.Name(), Queries: make([]QueryRun, len(queries))}
	limiter := newLimiter(eng.RateLimit)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(eng.Concurrency, 1))

	for i := range queries {
		g.Go(func() error {
			col.Queries[i] = r.runQuery(gctx, exec, limiter, queries[i])
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("collect %q: %w", exec.Name(), err)
	}
	return col, nil
}

func (r *Runner) runQuery(ctx context.Context, exec engine.Executor, limiter *rate.Limiter, q dataset.Query) QueryRun {
	run := QueryRun{QueryID: q.ID}

	for i := 0; i < r.config.WarmupRuns; i++ {
		if err := limiter.Wait(ctx); err != nil {
			run.Err = err
			return run
		}
		_, _ = exec.Execute(ctx, q, r.config.TopK)
	}

	var latencies []time.Duration
	var last *engine.Execution
	var lastErr error

	for i := 0; i < r.config.Runs; i++ {
		if err := limiter.Wait(ctx); err != nil {
			lastErr = err
			break
		}
		result, err := exec.Execute(ctx, q, r.config.TopK)
		if err != nil {
			lastErr = err
			continue
		}
		last = result
		latencies = append(latencies, result.Latency)
	}

	if last == nil {
		run.Err = lastErr
		slog.Warn("Query failed", "query", q.ID, "engine", exec.Name(), "error", lastErr)
		return run
	}

	run.RankedDocIDs = last.RankedDocIDs
	run.TotalMatches = last.TotalMatches
	run.Latency = ComputeLatencyStats(latencies)
	return run
}

func (r *Runner) scoreCollection(ctx context.Context, ds *dataset.Dataset, col *Collection) EngineResult {
	er := EngineResult{
		Engine:        col.Engine,
		Latency:       col.Latency(),
		CollectFailed: col.Failed(),
	}

	truth := make([][]string, 0, len(ds.Queries))
	pred := make([][]string, 0, len(ds.Queries))
	for i, q := range ds.Queries {
		run := col.Queries[i]
		if run.Err != nil {
			continue
		}
		er.QueryIDs = append(er.QueryIDs, q.ID)
		truth = append(truth, q.Truth)
		pred = append(pred, run.RankedDocIDs)
	}

	if len(truth) == 0 {
		er.Err = fmt.Errorf("%w: %d queries failed", ErrNothingCollected, er.CollectFailed)
		slog.Error("Engine produced no predictions", "engine", col.Engine, "failed", er.CollectFailed)
		return er
	}

	res, err := r.aggregator.Evaluate(ctx, truth, pred)
	er.Scores = res
	er.Err = err
	if err != nil {
		slog.Error("Scoring failed", "engine", col.Engine, "error", err)
	}
	return er
}

// Score evaluates an offline run file against a dataset.
func (r *Runner) Score(ctx context.Context, ds *dataset.Dataset, preds []dataset.Prediction) (*EngineResult, error) {
	batch := dataset.Align(ds, preds)

	res, err := r.aggregator.Evaluate(ctx, batch.Truth, batch.Pred)
	if err != nil {
		return nil, fmt.Errorf("score %q: %w", ds.Name, err)
	}

	return &EngineResult{
		Engine:   "predictions",
		QueryIDs: batch.QueryIDs,
		Scores:   res,
		Missing:  batch.Missing,
	}, nil
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

func writeCollection(job spec.Job, col *Collection) error {
	if err := os.MkdirAll(job.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(job.Output, fmt.Sprintf("%s.%s.jsonl", job.Name, col.Engine))
	if err := dataset.WritePredictionsFile(col.Predictions(), path); err != nil {
		return err
	}
	slog.Info("Predictions written", "engine", col.Engine, "path", path)
	return nil
}
