package ranking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBatchLengthMismatch = errors.New("batch length mismatch")
	ErrEmptyBatch          = errors.New("empty batch")
	ErrNoScoredQueries     = errors.New("no query could be scored")
)

const DefaultWorkers = 1

type Config struct {
	Catalog *catalog.Catalog
	// Report lists the short names averaged into Result.Means.
	// Nil means catalog.DefaultReport.
	Report  []string
	Options catalog.Options
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Catalog: catalog.Default(),
		Report:  catalog.DefaultReport,
		Workers: DefaultWorkers,
	}
}

// IncludeAll reports every recognised catalog metric, NDCG and BLEU included.
func (c Config) IncludeAll() Config {
	if c.Catalog == nil {
		c.Catalog = catalog.Default()
	}
	c.Report = c.Catalog.ShortNames()
	return c
}

type QueryResult struct {
	Index  int
	Vector Vector
	Err    error
}

type Result struct {
	Means     map[string]float64
	Queries   []QueryResult
	Evaluated int
	Failed    int
	// Unknown lists catalog names that were not recognised and scored 0.
	Unknown []string
	// Unreported lists requested report keys absent from the catalog.
	Unreported []string
}

type Aggregator struct {
	cfg       Config
	evaluator *Evaluator
}

func NewAggregator(cfg Config) *Aggregator {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Report == nil {
		cfg.Report = catalog.DefaultReport
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &Aggregator{
		cfg:       cfg,
		evaluator: NewEvaluator(cfg.Catalog, cfg.Options),
	}
}

func (a *Aggregator) Config() Config { return a.cfg }

// Evaluate scores every (truth, pred) pair and averages the report metrics.
// Queries whose evaluation fails are kept in Result.Queries with their error
// and left out of the means.
func (a *Aggregator) Evaluate(ctx context.Context, truth [][]string, pred [][]string) (*Result, error) {
	if len(truth) != len(pred) {
		return nil, fmt.Errorf("%w: %d truth sets, %d prediction lists", ErrBatchLengthMismatch, len(truth), len(pred))
	}
	if len(truth) == 0 {
		return nil, ErrEmptyBatch
	}

	res := &Result{
		Queries: make([]QueryResult, len(truth)),
		Unknown: a.cfg.Catalog.Unknown(),
	}
	if len(res.Unknown) > 0 {
		slog.Warn("Unknown metrics in catalog, scoring them as 0", "metrics", res.Unknown)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)

	for i := range truth {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := a.evaluator.Evaluate(truth[i], pred[i])
			res.Queries[i] = QueryResult{Index: i, Vector: v, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate batch: %w", err)
	}

	a.reduce(res)

	if res.Evaluated == 0 {
		return res, fmt.Errorf("%w: %d queries failed", ErrNoScoredQueries, res.Failed)
	}
	return res, nil
}

func (a *Aggregator) reduce(res *Result) {
	columns := make(map[string]int, len(a.cfg.Report))
	for _, short := range a.cfg.Report {
		idx := a.cfg.Catalog.IndexShort(short)
		if idx < 0 {
			res.Unreported = append(res.Unreported, short)
			continue
		}
		columns[short] = idx
	}
	if len(res.Unreported) > 0 {
		slog.Warn("Report metrics missing from catalog", "metrics", res.Unreported)
	}

	sums := make(map[string]float64, len(columns))
	for _, qr := range res.Queries {
		if qr.Err != nil {
			res.Failed++
			slog.Debug("Query excluded from means", "index", qr.Index, "error", qr.Err)
			continue
		}
		res.Evaluated++
		for short, idx := range columns {
			sums[short] += qr.Vector.Values[idx]
		}
	}

	res.Means = make(map[string]float64, len(columns))
	if res.Evaluated == 0 {
		return
	}
	n := float64(res.Evaluated)
	for short, sum := range sums {
		res.Means[short] = sum / n
	}
}

// EvaluateRanking averages the default report metrics over a batch using the
// default catalog.
func EvaluateRanking(truth [][]string, pred [][]string) (map[string]float64, error) {
	res, err := NewAggregator(DefaultConfig()).Evaluate(context.Background(), truth, pred)
	if err != nil {
		return nil, err
	}
	return res.Means, nil
}
