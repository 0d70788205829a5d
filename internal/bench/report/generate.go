package report

import (
	"slices"
	"time"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
)

func Generate(br *runner.BenchmarkResult, engines map[string]spec.Engine) *Report {
	r := &Report{
		Meta: BenchMeta{
			Timestamp:   time.Now().UTC(),
			TopK:        br.Config.TopK,
			Engines:     make(map[string]EngineInfo, len(engines)),
			Environment: NewEnvironmentInfo(),
		},
		Metrics: br.Config.Scoring.Report,
	}
	if len(r.Metrics) == 0 {
		r.Metrics = catalog.DefaultReport
	}

	for _, name := range br.AllEngineNames() {
		if eng, ok := engines[name]; ok {
			r.Meta.Engines[name] = EngineInfo{Type: eng.Type, Connection: eng.Connection, Index: eng.Index}
		}
	}

	for _, jr := range br.Jobs {
		job := JobReport{
			JobName:    jr.JobName,
			Dataset:    jr.Dataset,
			QueryCount: jr.QueryCount,
			Engines:    make([]EngineEntry, 0, len(jr.Engines)),
		}
		for i := range jr.Engines {
			job.Engines = append(job.Engines, entry(&jr.Engines[i]))
		}
		r.Jobs = append(r.Jobs, job)
	}

	return r
}

// FromScore builds a single-entry report for an offline run file.
func FromScore(name string, queryCount int, er *runner.EngineResult, metrics []string) *Report {
	if len(metrics) == 0 {
		metrics = catalog.DefaultReport
	}
	return &Report{
		Meta:    BenchMeta{Timestamp: time.Now().UTC(), Environment: NewEnvironmentInfo()},
		Metrics: metrics,
		Jobs: []JobReport{{
			JobName:    name,
			Dataset:    name,
			QueryCount: queryCount,
			Engines:    []EngineEntry{entry(er)},
		}},
	}
}

func entry(er *runner.EngineResult) EngineEntry {
	e := EngineEntry{
		Engine:        er.Engine,
		Means:         map[string]float64{},
		CollectFailed: er.CollectFailed,
		Missing:       len(er.Missing),
	}
	if !er.Latency.IsZero() {
		lat := er.Latency
		e.Latency = &lat
	}
	if er.Scores != nil {
		e.Means = er.Scores.Means
		e.Evaluated = er.Scores.Evaluated
		e.Failed = er.Scores.Failed
		e.Unknown = slices.Clone(er.Scores.Unknown)
	}
	if er.Err != nil {
		e.Error = er.Err.Error()
	}
	return e
}
