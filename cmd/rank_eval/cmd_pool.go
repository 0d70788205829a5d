package main

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/dataset"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/engine"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/pool"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/spec"
	"github.com/spf13/cobra"
)

const defaultPoolDepth = 20

func newPoolCommand() *cobra.Command {
	var (
		specPath string
		jobName  string
		outPath  string
		depth    int
	)

	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Pool the top results of several engines for manual judging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := spec.LoadFromFile(specPath)
			if err != nil {
				return err
			}
			job, err := findJob(bs, jobName)
			if err != nil {
				return err
			}
			ds, err := dataset.LoadFromFile(job.Dataset)
			if err != nil {
				return err
			}

			cfg, err := runner.ConfigFromSpec(bs.Metrics, spec.RunsConfig{})
			if err != nil {
				return err
			}
			cfg.TopK = max(cfg.TopK, depth)

			executors, cleanup, err := engine.CreateFromSpec(cmd.Context(), bs.Engines)
			if err != nil {
				return err
			}
			defer cleanup()

			r := runner.New(cfg)
			cols := make([]*runner.Collection, 0, len(job.Engines))
			for _, name := range job.Engines {
				col, err := r.Collect(cmd.Context(), executors[name], ds.Queries, bs.Engines[name])
				if err != nil {
					return err
				}
				cols = append(cols, col)
			}

			if err := pool.WritePoolFile(pool.Build(ds, cols, depth), outPath); err != nil {
				return err
			}
			slog.Info("Pool file written", "path", outPath, "queries", len(ds.Queries))
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "Bench spec YAML")
	cmd.Flags().StringVar(&jobName, "job", "", "Job to pool (default: the first job)")
	cmd.Flags().StringVar(&outPath, "out", "", "Pool YAML to write")
	cmd.Flags().IntVar(&depth, "depth", defaultPoolDepth, "Ranks taken from each engine")
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func findJob(bs *spec.BenchSpec, name string) (spec.Job, error) {
	if name == "" {
		return bs.Jobs[0], nil
	}
	for _, j := range bs.Jobs {
		if j.Name == name {
			return j, nil
		}
	}
	return spec.Job{}, fmt.Errorf("job %q not found in spec", name)
}
