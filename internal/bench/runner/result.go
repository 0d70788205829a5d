package runner

import (
	"errors"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/ranking"
)

var ErrNothingCollected = errors.New("no predictions collected")

// QueryRun is the outcome of asking one engine about one query.
type QueryRun struct {
	QueryID      string
	RankedDocIDs []string
	TotalMatches int64
	Latency      LatencyStats
	Err          error
}

// Collection holds one engine's runs in dataset order.
type Collection struct {
	Engine  string
	Queries []QueryRun
}

// Predictions returns the rankings of the queries that were collected successfully.
func (c *Collection) Predictions() []dataset.Prediction {
	preds := make([]dataset.Prediction, 0, len(c.Queries))
	for _, q := range c.Queries {
		if q.Err != nil {
			continue
		}
		preds = append(preds, dataset.Prediction{QueryID: q.QueryID, DocIDs: q.RankedDocIDs})
	}
	return preds
}

func (c *Collection) Failed() int {
	n := 0
	for _, q := range c.Queries {
		if q.Err != nil {
			n++
		}
	}
	return n
}

func (c *Collection) Latency() LatencyStats {
	stats := make([]LatencyStats, 0, len(c.Queries))
	for _, q := range c.Queries {
		stats = append(stats, q.Latency)
	}
	return MergeLatencyStats(stats)
}

type EngineResult struct {
	Engine string
	// QueryIDs lists the scored queries; Scores.Queries follows the same order.
	QueryIDs      []string
	Scores        *ranking.Result
	Latency       LatencyStats
	CollectFailed int
	// Missing lists dataset queries with no prediction when scoring a run file.
	Missing []string
	Err     error
}

type JobResult struct {
	JobName    string
	Dataset    string
	QueryCount int
	Engines    []EngineResult
}

type BenchmarkResult struct {
	Jobs   []*JobResult
	Config Config
}

func (br *BenchmarkResult) AllEngineNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, jr := range br.Jobs {
		for _, er := range jr.Engines {
			if !seen[er.Engine] {
				seen[er.Engine] = true
				names = append(names, er.Engine)
			}
		}
	}
	return names
}
