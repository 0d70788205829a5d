package engine

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/es"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/pg"
)

// CreateFromSpec builds one executor per engine. The returned cleanup closes
// every executor that was created.
func CreateFromSpec(ctx context.Context, engines map[string]spec.Engine) (map[string]Executor, func(), error) {
	executors := make(map[string]Executor, len(engines))

	cleanup := func() {
		for _, e := range executors {
			_ = e.Close()
		}
	}

	for name, eng := range engines {
		exec, err := create(ctx, name, eng)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		executors[name] = exec
	}

	return executors, cleanup, nil
}

func create(ctx context.Context, name string, eng spec.Engine) (Executor, error) {
	switch eng.Type {
	case "postgres":
		pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: eng.Connection})
		if err != nil {
			return nil, fmt.Errorf("create pg pool for %q: %w", name, err)
		}
		return NewPgExecutor(name, pool.GetConn(), eng.Query, pool.Close), nil

	case "elasticsearch":
		client, err := es.NewClient(es.ClientConfig{Addresses: []string{eng.Connection}})
		if err != nil {
			return nil, fmt.Errorf("create es client for %q: %w", name, err)
		}
		index := eng.Index
		if index == "" {
			index = spec.DefaultESIndex
		}
		return NewEsExecutor(name, client, index, eng.Query, eng.IDField), nil

	case "api":
		return NewAPIExecutor(name, eng.Connection, eng.Path), nil

	case "file":
		return LoadFileExecutor(name, eng.Connection)

	default:
		return nil, fmt.Errorf("unsupported engine type %q for %q", eng.Type, name)
	}
}
