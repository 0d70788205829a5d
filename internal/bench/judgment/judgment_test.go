package judgment

import (
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	pf := &pool.PoolFile{
		Dataset: "dev",
		Queries: []pool.PoolEntry{{
			QueryID: "q1",
			Query:   "capital of peru",
			Docs: []pool.PooledDoc{
				{DocID: "d1", Sources: []string{"bm25"}},
				{DocID: "d2", Sources: []string{"bm25", "dense"}},
			},
		}},
	}

	path := filepath.Join(t.TempDir(), "judgments.yaml")
	require.NoError(t, ExportForAnnotation(pf, path))

	jf, err := ImportAnnotations(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", jf.Dataset)
	require.Len(t, jf.Queries, 1)
	assert.Equal(t, "capital of peru", jf.Queries[0].Query)
	for _, d := range jf.Queries[0].Docs {
		assert.Equal(t, Ungraded, d.Grade)
	}
}

func TestMergeIntoDataset(t *testing.T) {
	ds := &dataset.Dataset{
		Name: "dev",
		Queries: []dataset.Query{
			{ID: "q1", Truth: []string{"old"}},
			{ID: "q2", Truth: []string{"keep"}},
		},
	}
	jf := &JudgmentFile{Queries: []JudgmentEntry{{
		QueryID: "q1",
		Docs: []GradedDoc{
			{DocID: "a", Grade: 1},
			{DocID: "b", Grade: 3},
			{DocID: "c", Grade: 0},
			{DocID: "d", Grade: Ungraded},
			{DocID: "e", Grade: 1},
		},
	}}}

	merged := MergeIntoDataset(jf, ds)

	assert.Equal(t, []string{"b", "a", "e"}, merged.Queries[0].Truth)
	assert.Equal(t, []string{"keep"}, merged.Queries[1].Truth)
	assert.Equal(t, []string{"old"}, ds.Queries[0].Truth)
}
