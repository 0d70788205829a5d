package main

import (
	"log/slog"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/judgment"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/pool"
	"github.com/spf13/cobra"
)

func newJudgeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "judge",
		Short: "Export pooled results for annotation and merge judgments back",
	}

	cmd.AddCommand(newJudgeExportCommand())
	cmd.AddCommand(newJudgeImportCommand())

	return cmd
}

func newJudgeExportCommand() *cobra.Command {
	var poolPath, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a judgment template from a pool file",
		Long: `Write a judgment template from a pool file.

Every pooled document starts with grade -1. Set it to 0 for not relevant or
a positive grade for relevant, higher meaning more relevant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := pool.ReadPoolFile(poolPath)
			if err != nil {
				return err
			}
			if err := judgment.ExportForAnnotation(pf, outPath); err != nil {
				return err
			}
			slog.Info("Annotation template written", "path", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&poolPath, "pool", "", "Pool YAML")
	cmd.Flags().StringVar(&outPath, "out", "", "Judgment template YAML to write")
	_ = cmd.MarkFlagRequired("pool")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newJudgeImportCommand() *cobra.Command {
	var judgmentsPath, datasetPath, outPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Merge graded judgments into a dataset",
		Long: `Merge graded judgments into a dataset.

Judged queries get their documents graded above zero as truth, most relevant
first, which is the order graded NDCG reads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jf, err := judgment.ImportAnnotations(judgmentsPath)
			if err != nil {
				return err
			}
			ds, err := dataset.LoadFromFile(datasetPath)
			if err != nil {
				return err
			}
			if err := dataset.WriteFile(judgment.MergeIntoDataset(jf, ds), outPath); err != nil {
				return err
			}
			slog.Info("Merged dataset written", "path", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&judgmentsPath, "judgments", "", "Graded judgment YAML")
	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Dataset JSONL to update")
	cmd.Flags().StringVar(&outPath, "out", "", "Merged dataset JSONL to write")
	_ = cmd.MarkFlagRequired("judgments")
	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
