package pool

import (
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
)

type PoolFile struct {
	Dataset string      `yaml:"dataset"`
	Depth   int         `yaml:"depth"`
	Queries []PoolEntry `yaml:"queries"`
}

type PoolEntry struct {
	QueryID string      `yaml:"query_id"`
	Query   string      `yaml:"query"`
	Docs    []PooledDoc `yaml:"docs"`
}

type PooledDoc struct {
	DocID   string   `yaml:"doc_id"`
	Sources []string `yaml:"sources"`
}

// Ranking is one engine's answer for a query.
type Ranking struct {
	Engine string
	DocIDs []string
}

// PoolResults merges the top depth ids of each ranking, keeping first-seen
// order and recording which engines returned each id.
func PoolResults(rankings []Ranking, depth int) []PooledDoc {
	seen := make(map[string]int)
	var docs []PooledDoc

	for _, r := range rankings {
		limit := min(depth, len(r.DocIDs))
		for _, docID := range r.DocIDs[:limit] {
			if i, ok := seen[docID]; ok {
				docs[i].Sources = append(docs[i].Sources, r.Engine)
				continue
			}
			seen[docID] = len(docs)
			docs = append(docs, PooledDoc{DocID: docID, Sources: []string{r.Engine}})
		}
	}
	return docs
}

// Build pools the collections of several engines over a dataset. Failed
// queries contribute nothing.
func Build(ds *dataset.Dataset, cols []*runner.Collection, depth int) *PoolFile {
	pf := &PoolFile{
		Dataset: ds.Name,
		Depth:   depth,
		Queries: make([]PoolEntry, 0, len(ds.Queries)),
	}

	for i, q := range ds.Queries {
		rankings := make([]Ranking, 0, len(cols))
		for _, col := range cols {
			if i >= len(col.Queries) || col.Queries[i].Err != nil {
				continue
			}
			rankings = append(rankings, Ranking{Engine: col.Engine, DocIDs: col.Queries[i].RankedDocIDs})
		}
		pf.Queries = append(pf.Queries, PoolEntry{
			QueryID: q.ID,
			Query:   q.Text,
			Docs:    PoolResults(rankings, depth),
		})
	}
	return pf
}
