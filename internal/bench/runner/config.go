package runner

import (
	"fmt"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"github.com/DjordjeVuckovic/rank-eval/internal/eval/ranking"
)

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	// TopK is the ranking depth requested from every engine.
	TopK       int
	WarmupRuns int
	Runs       int
	Scoring    ranking.Config
}

func DefaultConfig() Config {
	return Config{
		TopK:       spec.DefaultTopK,
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
		Scoring:    ranking.DefaultConfig(),
	}
}

// ConfigFromSpec translates the metrics and runs sections of a bench spec.
func ConfigFromSpec(m spec.MetricsConfig, runs spec.RunsConfig) (Config, error) {
	cfg := DefaultConfig()

	if len(m.Catalog) > 0 {
		if m.Strict {
			c, err := catalog.Strict(m.Catalog...)
			if err != nil {
				return Config{}, fmt.Errorf("metrics catalog: %w", err)
			}
			cfg.Scoring.Catalog = c
		} else {
			cfg.Scoring.Catalog = catalog.New(m.Catalog...)
		}
	}
	if len(m.Report) > 0 {
		cfg.Scoring.Report = m.Report
	}
	if m.IncludeAll {
		cfg.Scoring = cfg.Scoring.IncludeAll()
	}
	cfg.Scoring.Options = catalog.Options{Graded: m.Graded, Strict: m.Strict}
	if m.Workers > 0 {
		cfg.Scoring.Workers = m.Workers
	}
	if m.TopK > 0 {
		cfg.TopK = m.TopK
	}
	if runs.Warmup > 0 {
		cfg.WarmupRuns = runs.Warmup
	}
	if runs.Iterations > 0 {
		cfg.Runs = runs.Iterations
	}
	return cfg, nil
}
