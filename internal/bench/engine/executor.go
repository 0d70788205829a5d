package engine

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
)

// Executor produces a ranked list of document ids for a query.
type Executor interface {
	Execute(ctx context.Context, q dataset.Query, k int) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	RankedDocIDs []string
	TotalMatches int64
	Latency      time.Duration
}

func truncate(ids []string, k int) []string {
	if k > 0 && len(ids) > k {
		return ids[:k]
	}
	return ids
}
