package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/rank-eval/internal/eval/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the default metric catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Name\tShort\tKind\tK\tReported")
			for _, s := range catalog.Default().Specs() {
				k := "-"
				if s.K > 0 {
					k = fmt.Sprint(s.K)
				}
				reported := ""
				if slices.Contains(catalog.DefaultReport, s.Short()) {
					reported = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.Short(), s.Kind, k, reported)
			}
			return tw.Flush()
		},
	}
}
