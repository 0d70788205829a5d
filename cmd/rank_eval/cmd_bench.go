package main

import (
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/engine"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/report"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/spf13/cobra"
)

func newBenchCommand() *cobra.Command {
	var (
		specPath string
		out      outputFlags
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Collect predictions from search engines and score them",
		Long: `Run every job of a bench spec YAML.

Each job queries its engines for the top-K ids of every dataset query,
measures latency and scores the rankings with the configured metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := spec.LoadFromFile(specPath)
			if err != nil {
				return err
			}
			cfg, err := runner.ConfigFromSpec(bs.Metrics, bs.Runs)
			if err != nil {
				return err
			}

			executors, cleanup, err := engine.CreateFromSpec(cmd.Context(), bs.Engines)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := runner.New(cfg).RunAll(cmd.Context(), bs, executors)
			if err != nil {
				return err
			}

			return out.emit(cmd.Context(), cmd, report.Generate(result, bs.Engines))
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "Bench spec YAML")
	_ = cmd.MarkFlagRequired("spec")
	out.register(cmd)

	return cmd
}
