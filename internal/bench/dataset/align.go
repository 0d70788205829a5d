package dataset

import "log/slog"

// Align pairs every dataset query with its prediction, in dataset order.
// Predictions for unknown queries are ignored.
func Align(ds *Dataset, preds []Prediction) *Batch {
	byID := make(map[string][]string, len(preds))
	for _, p := range preds {
		byID[p.QueryID] = p.DocIDs
	}

	b := &Batch{
		QueryIDs: make([]string, 0, len(ds.Queries)),
		Truth:    make([][]string, 0, len(ds.Queries)),
		Pred:     make([][]string, 0, len(ds.Queries)),
	}

	for _, q := range ds.Queries {
		ids, ok := byID[q.ID]
		if !ok {
			b.Missing = append(b.Missing, q.ID)
		}
		b.QueryIDs = append(b.QueryIDs, q.ID)
		b.Truth = append(b.Truth, q.Truth)
		b.Pred = append(b.Pred, ids)
	}

	if len(b.Missing) > 0 {
		slog.Warn("Queries without predictions", "dataset", ds.Name, "count", len(b.Missing))
	}
	if extra := len(byID) - (len(ds.Queries) - len(b.Missing)); extra > 0 {
		slog.Warn("Predictions for unknown queries ignored", "dataset", ds.Name, "count", extra)
	}

	return b
}
