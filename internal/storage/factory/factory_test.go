package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunStore(t *testing.T) {
	ctx := context.Background()

	s, err := NewRunStore(ctx, Config{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &in_mem.RunStore{}, s)

	_, err = NewRunStore(ctx, Config{Type: storage.PG})
	assert.ErrorContains(t, err, "requires a connection string")

	_, err = NewRunStore(ctx, Config{Type: "sqlite"})
	assert.ErrorIs(t, err, storage.ErrUnsupportedStore)
}
