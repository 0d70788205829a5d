package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/report"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/spf13/cobra"
)

func newScoreCommand() *cobra.Command {
	var (
		truthPath string
		predPath  string
		metrics   metricFlags
		out       outputFlags
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a predictions file against a dataset",
		Long: `Score a predictions JSONL file against a dataset JSONL file.

Dataset lines carry "query_id", "query" and "docid" or "docids".
Prediction lines carry "query_id" and the ranked "docids". Queries without a
prediction are scored with an empty ranking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.LoadFromFile(truthPath)
			if err != nil {
				return err
			}
			preds, err := dataset.LoadPredictions(predPath)
			if err != nil {
				return err
			}

			cfg, err := runner.ConfigFromSpec(spec.MetricsConfig{
				Catalog:    metrics.catalog,
				Report:     metrics.report,
				IncludeAll: metrics.includeAll,
				Graded:     metrics.graded,
				Strict:     metrics.strict,
				Workers:    metrics.workers,
			}, spec.RunsConfig{})
			if err != nil {
				return err
			}

			er, err := runner.New(cfg).Score(cmd.Context(), ds, preds)
			if err != nil {
				return err
			}
			er.Engine = strings.TrimSuffix(filepath.Base(predPath), filepath.Ext(predPath))

			rpt := report.FromScore(ds.Name, len(ds.Queries), er, cfg.Scoring.Report)
			if err := out.emit(cmd.Context(), cmd, rpt); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Summary(er.Scores.Means, rpt.Metrics))
			return nil
		},
	}

	cmd.Flags().StringVar(&truthPath, "truth", "", "Dataset JSONL with ground truth")
	cmd.Flags().StringVar(&predPath, "pred", "", "Predictions JSONL")
	_ = cmd.MarkFlagRequired("truth")
	_ = cmd.MarkFlagRequired("pred")
	metrics.register(cmd)
	out.register(cmd)

	return cmd
}
