package spec

import (
	"testing"

	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		yaml := `
engines:
  pg-fts:
    type: postgres
    connection: "postgresql://localhost/test"
    query: "SELECT id FROM docs WHERE tsv @@ plainto_tsquery($1) LIMIT $2"
  es:
    type: elasticsearch
    connection: "http://localhost:9200"
    index: nq320k
    query: '{"query": {"match": {"body": "{{query}}"}}}'
    id_field: docid
    rate_limit: 20

metrics:
  catalog: ["MRR@10", "P@1", "R@10", "NDCG@10"]
  report: ["mrr10", "p1", "r10"]
  top_k: 50
  workers: 4

runs:
  warmup: 1
  iterations: 3

jobs:
  - name: "nq-dev"
    dataset: data/dev4retrieval.json
    engines: [pg-fts, es]
    output: out/
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Len(t, s.Jobs, 1)
		assert.Len(t, s.Engines, 2)
		assert.Equal(t, "nq-dev", s.Jobs[0].Name)
		assert.Equal(t, "out/", s.Jobs[0].Output)
		assert.Equal(t, 3, s.Runs.Iterations)
		assert.Equal(t, 50, s.Metrics.TopK)
		assert.Equal(t, 4, s.Metrics.Workers)
		assert.Equal(t, "docid", s.Engines["es"].IDField)
		assert.InDelta(t, 20.0, s.Engines["es"].RateLimit, 1e-9)
	})

	t.Run("no jobs", func(t *testing.T) {
		yaml := `
engines:
  run:
    type: file
    connection: run.jsonl
jobs: []
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "no jobs")
	})

	t.Run("no engines", func(t *testing.T) {
		yaml := `
engines: {}
jobs:
  - name: test
    dataset: dev.jsonl
    engines: [run]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "no engines")
	})

	t.Run("job without dataset", func(t *testing.T) {
		yaml := `
engines:
  run:
    type: file
    connection: run.jsonl
jobs:
  - name: test
    engines: [run]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "no dataset")
	})

	t.Run("job references unknown engine", func(t *testing.T) {
		yaml := `
engines:
  run:
    type: file
    connection: run.jsonl
jobs:
  - name: test
    dataset: dev.jsonl
    engines: [run, unknown]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "unknown engine")
	})

	t.Run("postgres requires query", func(t *testing.T) {
		yaml := `
engines:
  pg:
    type: postgres
    connection: "postgresql://localhost/test"
jobs:
  - name: test
    dataset: dev.jsonl
    engines: [pg]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "has no query")
	})

	t.Run("defaults applied", func(t *testing.T) {
		yaml := `
engines:
  es:
    type: elasticsearch
    connection: "http://localhost:9200"
metrics: {}
runs: {}
jobs:
  - name: test
    dataset: dev.jsonl
    engines: [es]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, DefaultTopK, s.Metrics.TopK)
		assert.Equal(t, catalog.DefaultNames, s.Metrics.Catalog)
		assert.Equal(t, catalog.DefaultReport, s.Metrics.Report)
		assert.Equal(t, 1, s.Metrics.Workers)
		assert.Equal(t, 1, s.Runs.Iterations)
		assert.Equal(t, DefaultESIndex, s.Engines["es"].Index)
	})

	t.Run("include_all leaves report empty", func(t *testing.T) {
		yaml := `
engines:
  run:
    type: file
    connection: run.jsonl
metrics:
  include_all: true
jobs:
  - name: test
    dataset: dev.jsonl
    engines: [run]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Empty(t, s.Metrics.Report)
	})

	t.Run("unknown metric tolerated unless strict", func(t *testing.T) {
		base := `
engines:
  run:
    type: file
    connection: run.jsonl
jobs:
  - name: test
    dataset: dev.jsonl
    engines: [run]
metrics:
  catalog: ["P@1", "MAP"]
`
		_, err := Parse([]byte(base))
		require.NoError(t, err)

		_, err = Parse([]byte(base + "  strict: true\n"))
		assert.ErrorIs(t, err, catalog.ErrUnknownMetric)
	})

	t.Run("invalid engine type", func(t *testing.T) {
		yaml := `
engines:
  bad:
    type: mysql
    connection: "mysql://localhost"
jobs:
  - name: test
    dataset: dev.jsonl
    engines: [bad]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "invalid type")
	})
}
