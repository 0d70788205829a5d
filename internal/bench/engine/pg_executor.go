package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool the executor needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PgExecutor runs a SQL statement with the query text as $1 and the limit as $2.
// The first selected column is taken as the document id.
type PgExecutor struct {
	name  string
	db    Querier
	query string
	close func()
}

func NewPgExecutor(name string, db Querier, query string, closeFn func()) *PgExecutor {
	return &PgExecutor{name: name, db: db, query: query, close: closeFn}
}

func (e *PgExecutor) Execute(ctx context.Context, q dataset.Query, k int) (*Execution, error) {
	start := time.Now()

	rows, err := e.db.Query(ctx, e.query, q.Text, k)
	if err != nil {
		return nil, fmt.Errorf("pg query: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("pg scan row: %w", err)
		}
		if len(vals) == 0 {
			return nil, fmt.Errorf("pg query returned no columns")
		}
		id, err := formatID(vals[0])
		if err != nil {
			return nil, fmt.Errorf("pg extract id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pg rows: %w", err)
	}
	latency := time.Since(start)

	return &Execution{
		RankedDocIDs: truncate(ids, k),
		TotalMatches: int64(len(ids)),
		Latency:      latency,
	}, nil
}

func (e *PgExecutor) Name() string { return e.name }

func (e *PgExecutor) Close() error {
	if e.close != nil {
		e.close()
	}
	return nil
}

func formatID(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case [16]byte:
		return uuid.UUID(v).String(), nil
	case int16, int32, int64, int:
		return fmt.Sprintf("%d", v), nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("null id")
	default:
		return "", fmt.Errorf("unsupported id type %T", val)
	}
}
