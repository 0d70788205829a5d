package report

import (
	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
)

// Runs converts every scored engine entry into a run record for persistence.
// Entries that failed outright are skipped.
func Runs(r *Report) []*storage.Run {
	var runs []*storage.Run
	for _, jr := range r.Jobs {
		for _, e := range jr.Engines {
			if e.Error != "" && e.Evaluated == 0 {
				continue
			}
			runs = append(runs, &storage.Run{
				Name:       jr.JobName,
				Engine:     e.Engine,
				CreatedAt:  r.Meta.Timestamp,
				QueryCount: jr.QueryCount,
				Evaluated:  e.Evaluated,
				Failed:     e.Failed + e.CollectFailed,
				Means:      e.Means,
			})
		}
	}
	return runs
}
