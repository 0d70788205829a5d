package in_mem

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewRunStore()

	run := &storage.Run{Name: "dev", Engine: "bm25", QueryCount: 2, Evaluated: 2, Means: map[string]float64{"mrr": 0.75}}
	id, err := s.Save(ctx, run)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.False(t, run.CreatedAt.IsZero())

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "dev", got.Name)
	assert.InDelta(t, 0.75, got.Means["mrr"], 1e-9)

	got.Means["mrr"] = 0
	again, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, again.Means["mrr"], 1e-9)
}

func TestRunStore_GetMissing(t *testing.T) {
	_, err := NewRunStore().Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storage.ErrRunNotFound)
}

func TestRunStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewRunStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"a", "b", "c"} {
		_, err := s.Save(ctx, &storage.Run{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	runs, total, err := s.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].Name)
	assert.Equal(t, "b", runs[1].Name)

	rest, _, err := s.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "a", rest[0].Name)

	past, _, err := s.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, past)

	all, _, err := s.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
