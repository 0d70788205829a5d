package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank_eval",
		Short: "Ranking quality metrics for retrieval runs",
		Long: `rank_eval scores ranked document lists against ground truth.

It reports MRR, precision and hit rate at several depths, and optionally
NDCG and BLEU. Predictions can come from a run file or be collected live
from Postgres, Elasticsearch or an HTTP search API.`,
		Version:      version,
		SilenceUsage: true,
	}

	verbose := cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newBenchCommand())
	cmd.AddCommand(newPoolCommand())
	cmd.AddCommand(newJudgeCommand())
	cmd.AddCommand(newCatalogCommand())

	return cmd
}
