package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/pg"
)

type Config struct {
	Type  storage.Type
	PgURL string
}

// NewRunStore opens the configured run store. The postgres store creates its
// table on first use.
func NewRunStore(ctx context.Context, cfg Config) (storage.RunStore, error) {
	switch cfg.Type {
	case storage.InMem, "":
		slog.Info("Using in-memory run store")
		return in_mem.NewRunStore(), nil

	case storage.PG:
		if cfg.PgURL == "" {
			return nil, fmt.Errorf("postgres run store requires a connection string")
		}
		pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: cfg.PgURL})
		if err != nil {
			return nil, err
		}
		s := pg.NewRunStore(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
		slog.Info("Using postgres run store")
		return s, nil

	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnsupportedStore, cfg.Type)
	}
}
