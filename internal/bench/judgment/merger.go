package judgment

import (
	"log/slog"
	"slices"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
)

// MergeIntoDataset replaces the truth of every judged query with its
// documents graded above zero, most relevant first. Graded NDCG reads that
// order as the relevance ranking. Unjudged queries keep their truth.
func MergeIntoDataset(jf *JudgmentFile, ds *dataset.Dataset) *dataset.Dataset {
	judged := make(map[string][]GradedDoc, len(jf.Queries))
	for _, entry := range jf.Queries {
		judged[entry.QueryID] = entry.Docs
	}

	merged := &dataset.Dataset{
		Name:    ds.Name,
		Queries: slices.Clone(ds.Queries),
	}

	ungraded := 0
	for i, q := range merged.Queries {
		docs, ok := judged[q.ID]
		if !ok {
			continue
		}
		relevant := make([]GradedDoc, 0, len(docs))
		for _, d := range docs {
			switch {
			case d.Grade == Ungraded:
				ungraded++
			case d.Grade > 0:
				relevant = append(relevant, d)
			}
		}
		slices.SortStableFunc(relevant, func(a, b GradedDoc) int { return b.Grade - a.Grade })

		truth := make([]string, len(relevant))
		for j, d := range relevant {
			truth[j] = d.DocID
		}
		merged.Queries[i].Truth = truth
	}

	if ungraded > 0 {
		slog.Warn("Judgment file has ungraded documents", "count", ungraded)
	}
	return merged
}
