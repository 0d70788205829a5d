package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/report"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/factory"
	"github.com/spf13/cobra"
)

type metricFlags struct {
	catalog    []string
	report     []string
	includeAll bool
	graded     bool
	strict     bool
	workers    int
}

func (f *metricFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.catalog, "catalog", nil, "Metric names computed per query (default: full catalog)")
	cmd.Flags().StringSliceVar(&f.report, "report", nil, "Short names averaged into the report (default: mrr5..r100)")
	cmd.Flags().BoolVar(&f.includeAll, "include-all", false, "Report every catalog metric, NDCG and BLEU included")
	cmd.Flags().BoolVar(&f.graded, "graded", false, "Use graded relevance for NDCG")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject unknown metrics and empty predictions for BLEU")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Scoring parallelism")
}

type outputFlags struct {
	jsonPath string
	storeURL string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.jsonPath, "json", "", "Write the report as JSON to this path")
	cmd.Flags().StringVar(&f.storeURL, "store", "", "Persist results as runs in this Postgres database")
}

// emit prints the report table and writes the optional JSON file and runs.
func (f *outputFlags) emit(ctx context.Context, cmd *cobra.Command, rpt *report.Report) error {
	report.WriteTable(rpt, cmd.OutOrStdout())

	if f.jsonPath != "" {
		if err := report.WriteJSON(rpt, f.jsonPath); err != nil {
			return err
		}
		slog.Info("Report written", "path", f.jsonPath)
	}

	if f.storeURL != "" {
		if err := persistRuns(ctx, f.storeURL, rpt); err != nil {
			return err
		}
	}
	return nil
}

func persistRuns(ctx context.Context, url string, rpt *report.Report) error {
	store, err := factory.NewRunStore(ctx, factory.Config{Type: storage.PG, PgURL: url})
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer store.Close()

	for _, run := range report.Runs(rpt) {
		id, err := store.Save(ctx, run)
		if err != nil {
			return fmt.Errorf("save run %s/%s: %w", run.Name, run.Engine, err)
		}
		slog.Info("Run stored", "id", id, "job", run.Name, "engine", run.Engine)
	}
	return nil
}
