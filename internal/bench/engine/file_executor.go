package engine

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
)

// FileExecutor replays predictions loaded from a JSONL run file.
// Queries absent from the file yield an empty ranking.
type FileExecutor struct {
	name  string
	preds map[string][]string
}

func NewFileExecutor(name string, preds []dataset.Prediction) *FileExecutor {
	m := make(map[string][]string, len(preds))
	for _, p := range preds {
		m[p.QueryID] = p.DocIDs
	}
	return &FileExecutor{name: name, preds: m}
}

func LoadFileExecutor(name, path string) (*FileExecutor, error) {
	preds, err := dataset.LoadPredictions(path)
	if err != nil {
		return nil, fmt.Errorf("load predictions for %q: %w", name, err)
	}
	return NewFileExecutor(name, preds), nil
}

func (e *FileExecutor) Execute(ctx context.Context, q dataset.Query, k int) (*Execution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := e.preds[q.ID]
	return &Execution{
		RankedDocIDs: truncate(ids, k),
		TotalMatches: int64(len(ids)),
	}, nil
}

func (e *FileExecutor) Name() string { return e.name }
func (e *FileExecutor) Close() error { return nil }
