package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("run not found")

// Run is a persisted evaluation: the averaged report metrics of one batch.
type Run struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Engine     string             `json:"engine,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	QueryCount int                `json:"query_count"`
	Evaluated  int                `json:"evaluated"`
	Failed     int                `json:"failed"`
	Means      map[string]float64 `json:"means"`
}

type RunStore interface {
	Save(ctx context.Context, run *Run) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*Run, error)
	// List returns one page of runs, most recent first, and the total count.
	List(ctx context.Context, offset, limit int) ([]Run, int64, error)
	Healthy(ctx context.Context) bool
	Close()
}

type Type string

const (
	PG    Type = "postgres"
	InMem Type = "memory"
)

const DefaultListLimit = 50

type StorerError string

const ErrUnsupportedStore StorerError = "unsupported run store type"

func (e StorerError) Error() string {
	return string(e)
}

// Prepare fills the id and creation time of a run about to be saved.
func Prepare(run *Run) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if run.Means == nil {
		run.Means = map[string]float64{}
	}
}
