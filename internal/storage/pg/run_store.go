package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS eval_runs (
    id          UUID PRIMARY KEY,
    name        TEXT        NOT NULL,
    engine      TEXT        NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL,
    query_count INTEGER     NOT NULL,
    evaluated   INTEGER     NOT NULL,
    failed      INTEGER     NOT NULL,
    means       JSONB       NOT NULL
);
CREATE INDEX IF NOT EXISTS eval_runs_created_at_idx ON eval_runs (created_at DESC);
`

type RunStore struct {
	pool *ConnectionPool
}

func NewRunStore(pool *ConnectionPool) *RunStore {
	return &RunStore{pool: pool}
}

// EnsureSchema creates the eval_runs table when it does not exist yet.
func (s *RunStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.GetConn().Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create eval_runs schema: %w", err)
	}
	return nil
}

func (s *RunStore) Save(ctx context.Context, run *storage.Run) (uuid.UUID, error) {
	storage.Prepare(run)

	means, err := json.Marshal(run.Means)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal means: %w", err)
	}

	cmd := `
        INSERT INTO eval_runs (id, name, engine, created_at, query_count, evaluated, failed, means)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err = s.pool.GetConn().QueryRow(
		ctx,
		cmd,
		run.ID,
		run.Name,
		run.Engine,
		run.CreatedAt,
		run.QueryCount,
		run.Evaluated,
		run.Failed,
		means,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert run: %w", err)
	}

	return id, nil
}

func (s *RunStore) Get(ctx context.Context, id uuid.UUID) (*storage.Run, error) {
	row := s.pool.GetConn().QueryRow(ctx, `
        SELECT id, name, engine, created_at, query_count, evaluated, failed, means
        FROM eval_runs WHERE id = $1`, id)

	run, err := scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", id, err)
	}
	return run, nil
}

func (s *RunStore) List(ctx context.Context, offset, limit int) ([]storage.Run, int64, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	var total int64
	if err := s.pool.GetConn().QueryRow(ctx, `SELECT count(*) FROM eval_runs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count runs: %w", err)
	}

	rows, err := s.pool.GetConn().Query(ctx, `
        SELECT id, name, engine, created_at, query_count, evaluated, failed, means
        FROM eval_runs ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`, max(offset, 0), limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]storage.Run, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, total, nil
}

func (s *RunStore) Close() {
	s.pool.Close()
}

func (s *RunStore) Healthy(ctx context.Context) bool {
	return s.pool.Ping(ctx) == nil
}

func scanRun(row pgx.Row) (*storage.Run, error) {
	var (
		run   storage.Run
		means []byte
	)
	if err := row.Scan(
		&run.ID,
		&run.Name,
		&run.Engine,
		&run.CreatedAt,
		&run.QueryCount,
		&run.Evaluated,
		&run.Failed,
		&means,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(means, &run.Means); err != nil {
		return nil, fmt.Errorf("failed to unmarshal means: %w", err)
	}
	return &run, nil
}
