package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/es"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/pg"
	pkgtesting "github.com/DjordjeVuckovic/rank-eval/pkg/testing"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgExecutor_Container(t *testing.T) {
	pkgtesting.RequireIntegration(t)
	ctx := context.Background()

	container := pkgtesting.NewPGContainer(ctx, t)
	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)

	_, err = pool.GetConn().Exec(ctx, `
		CREATE TABLE docs (id TEXT PRIMARY KEY, body TEXT NOT NULL);
		INSERT INTO docs VALUES ('d1', 'lima is the capital of peru'), ('d2', 'peru borders chile'), ('d3', 'hamlet');`)
	require.NoError(t, err)

	exec := NewPgExecutor("pg", pool.GetConn(), `
		SELECT id FROM docs
		WHERE to_tsvector('english', body) @@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(to_tsvector('english', body), plainto_tsquery('english', $1)) DESC, id
		LIMIT $2`, pool.Close)
	defer exec.Close()

	got, err := exec.Execute(ctx, dataset.Query{Text: "peru"}, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"d1", "d2"}, got.RankedDocIDs)
	assert.Positive(t, got.Latency)
}

func TestEsExecutor_Container(t *testing.T) {
	pkgtesting.RequireIntegration(t)
	ctx := context.Background()

	container := pkgtesting.NewESContainer(ctx, t)
	client, err := es.NewClient(es.ClientConfig{Addresses: []string{container.Address}})
	require.NoError(t, err)

	docs := map[string]string{
		"d1": `{"docid": "d1", "body": "lima is the capital of peru"}`,
		"d2": `{"docid": "d2", "body": "hamlet was written by shakespeare"}`,
	}
	for id, body := range docs {
		_, err := client.Index("docs").Id(id).Raw(strings.NewReader(body)).Refresh(refresh.True).Do(ctx)
		require.NoError(t, err)
	}

	exec := NewEsExecutor("es", client, "docs", `{"query": {"match": {"body": "{{query}}"}}}`, "docid")
	got, err := exec.Execute(ctx, dataset.Query{Text: "capital of peru"}, 10)
	require.NoError(t, err)
	require.NotEmpty(t, got.RankedDocIDs)
	assert.Equal(t, "d1", got.RankedDocIDs[0])
}
