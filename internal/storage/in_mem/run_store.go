package in_mem

import (
	"context"
	"log/slog"
	"maps"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/google/uuid"
)

type RunStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]storage.Run
}

func NewRunStore() *RunStore {
	return &RunStore{
		storage: make(map[uuid.UUID]storage.Run),
	}
}

func (s *RunStore) Save(_ context.Context, run *storage.Run) (uuid.UUID, error) {
	storage.Prepare(run)

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	stored := *run
	stored.Means = maps.Clone(run.Means)
	s.storage[run.ID] = stored
	slog.Debug("Saved run to in-memory storage", "id", run.ID, "name", run.Name)

	return run.ID, nil
}

func (s *RunStore) Get(_ context.Context, id uuid.UUID) (*storage.Run, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	run, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrRunNotFound
	}
	run.Means = maps.Clone(run.Means)
	return &run, nil
}

func (s *RunStore) List(_ context.Context, offset, limit int) ([]storage.Run, int64, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	s.storageLock.RLock()
	runs := make([]storage.Run, 0, len(s.storage))
	for _, r := range s.storage {
		r.Means = maps.Clone(r.Means)
		runs = append(runs, r)
	}
	s.storageLock.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID.String() > runs[j].ID.String()
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	total := int64(len(runs))
	offset = min(max(offset, 0), len(runs))
	end := min(offset+limit, len(runs))
	return runs[offset:end], total, nil
}

func (s *RunStore) Close() {}

func (s *RunStore) Healthy(context.Context) bool { return true }
